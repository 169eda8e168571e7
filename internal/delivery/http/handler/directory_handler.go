package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/delivery/http/middleware"
	"oncoportal/internal/usecase"
	"oncoportal/pkg/response"
	"oncoportal/pkg/validator"

	"github.com/gorilla/mux"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DirectoryHandler) GetHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.directoryUsecase.Hospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get hospitals")
		return
	}
	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// GetDoctors lists doctors, optionally filtered by the hospital query
// parameter ("all" or empty returns everyone).
func (h *DirectoryHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	hospital := r.URL.Query().Get("hospital")
	doctors, err := h.directoryUsecase.DoctorsByHospital(r.Context(), hospital)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DirectoryHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.directoryUsecase.AllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}
	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// GetMyPatients lists the patients assigned to the authenticated doctor.
func (h *DirectoryHandler) GetMyPatients(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	patients, err := h.directoryUsecase.PatientsForDoctor(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}
	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *DirectoryHandler) AddHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.AddHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.directoryUsecase.AddHospital(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalAlreadyExists:
			response.Error(w, http.StatusConflict, "A hospital with that name already exists", nil)
		default:
			response.InternalServerError(w, "Failed to add hospital")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Hospital added successfully", hospital)
}

func (h *DirectoryHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.directoryUsecase.AllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *DirectoryHandler) patientIDFromPath(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

func (h *DirectoryHandler) GetPatientAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientIDFromPath(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	appointments, err := h.directoryUsecase.PatientAppointments(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *DirectoryHandler) GetPatientMedicalHistory(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientIDFromPath(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	history, err := h.directoryUsecase.PatientMedicalHistory(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get medical history")
		return
	}
	response.Success(w, http.StatusOK, "Medical history retrieved successfully", history)
}

func (h *DirectoryHandler) GetPatientTestResults(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientIDFromPath(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	results, err := h.directoryUsecase.PatientTestResults(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get test results")
		return
	}
	response.Success(w, http.StatusOK, "Test results retrieved successfully", results)
}
