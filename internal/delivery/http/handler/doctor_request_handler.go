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

type DoctorRequestHandler struct {
	requestUsecase usecase.DoctorRequestUsecase
	validator      *validator.CustomValidator
}

func NewDoctorRequestHandler(requestUsecase usecase.DoctorRequestUsecase, validator *validator.CustomValidator) *DoctorRequestHandler {
	return &DoctorRequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

func (h *DoctorRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	// Patients may only file requests for themselves.
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok && userID != req.PatientID {
		response.Forbidden(w, "You can only create requests for yourself")
		return
	}

	request, err := h.requestUsecase.CreateRequest(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPersonNotFound:
			response.NotFound(w, "Doctor or patient not found")
		default:
			response.InternalServerError(w, "Failed to create request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Request created successfully", request)
}

func (h *DoctorRequestHandler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	requests, err := h.requestUsecase.ListForPatient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get requests")
		return
	}

	response.Success(w, http.StatusOK, "Requests retrieved successfully", requests)
}

func (h *DoctorRequestHandler) GetIncomingRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	requests, err := h.requestUsecase.ListForDoctor(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get requests")
		return
	}

	response.Success(w, http.StatusOK, "Requests retrieved successfully", requests)
}

func (h *DoctorRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	var req dto.UpdateRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.requestUsecase.SetStatus(r.Context(), requestID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Request not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid request status", nil)
		default:
			response.InternalServerError(w, "Failed to update request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Request updated successfully", request)
}
