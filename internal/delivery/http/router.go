package http

import (
	"net/http"

	"oncoportal/internal/delivery/http/handler"
	"oncoportal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	profileHandler       *handler.ProfileHandler
	directoryHandler     *handler.DirectoryHandler
	doctorRequestHandler *handler.DoctorRequestHandler
	dataEntryHandler     *handler.DataEntryHandler
	diagnosisHandler     *handler.DiagnosisHandler
	chatbotHandler       *handler.ChatbotHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	directoryHandler *handler.DirectoryHandler,
	doctorRequestHandler *handler.DoctorRequestHandler,
	dataEntryHandler *handler.DataEntryHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	chatbotHandler *handler.ChatbotHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		profileHandler:       profileHandler,
		directoryHandler:     directoryHandler,
		doctorRequestHandler: doctorRequestHandler,
		dataEntryHandler:     dataEntryHandler,
		diagnosisHandler:     diagnosisHandler,
		chatbotHandler:       chatbotHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Directory routes (public)
	api.HandleFunc("/hospitals", r.directoryHandler.GetHospitals).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.directoryHandler.GetDoctors).Methods(http.MethodGet)

	// Profile routes (any authenticated user)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	// Chatbot (any authenticated user)
	chatbot := api.PathPrefix("/chatbot").Subrouter()
	chatbot.Use(r.authMiddleware.Authenticate)
	chatbot.HandleFunc("/message", r.chatbotHandler.SendMessage).Methods(http.MethodPost)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/requests", r.doctorRequestHandler.CreateRequest).Methods(http.MethodPost)
	patient.HandleFunc("/requests", r.doctorRequestHandler.GetMyRequests).Methods(http.MethodGet)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/requests", r.doctorRequestHandler.GetIncomingRequests).Methods(http.MethodGet)
	doctor.HandleFunc("/requests/{id}/status", r.doctorRequestHandler.UpdateStatus).Methods(http.MethodPut)
	doctor.HandleFunc("/patients", r.directoryHandler.GetMyPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/appointments", r.directoryHandler.GetPatientAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/medical-history", r.directoryHandler.GetPatientMedicalHistory).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/test-results", r.directoryHandler.GetPatientTestResults).Methods(http.MethodGet)
	doctor.HandleFunc("/data-entries", r.dataEntryHandler.SaveEntry).Methods(http.MethodPost)
	doctor.HandleFunc("/patients/{patientId}/data-entries", r.dataEntryHandler.GetEntries).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{patientId}/knowledge-graph", r.dataEntryHandler.GenerateGraph).Methods(http.MethodPost)
	doctor.HandleFunc("/patients/{patientId}/knowledge-graph", r.dataEntryHandler.GetGraph).Methods(http.MethodGet)
	doctor.HandleFunc("/diagnosis", r.diagnosisHandler.Calculate).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/patients", r.directoryHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", r.directoryHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/hospitals", r.directoryHandler.AddHospital).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
