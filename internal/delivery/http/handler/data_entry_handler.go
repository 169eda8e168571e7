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

type DataEntryHandler struct {
	dataUsecase usecase.PatientDataUsecase
	validator   *validator.CustomValidator
}

func NewDataEntryHandler(dataUsecase usecase.PatientDataUsecase, validator *validator.CustomValidator) *DataEntryHandler {
	return &DataEntryHandler{
		dataUsecase: dataUsecase,
		validator:   validator,
	}
}

func (h *DataEntryHandler) SaveEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.SaveDataEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.dataUsecase.SaveEntry(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save patient data")
		return
	}

	response.Success(w, http.StatusCreated, "Patient data saved", result)
}

func (h *DataEntryHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	entries, err := h.dataUsecase.ListEntries(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get patient data")
		return
	}

	response.Success(w, http.StatusOK, "Patient data retrieved successfully", entries)
}

func (h *DataEntryHandler) GenerateGraph(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	graph, err := h.dataUsecase.GenerateGraph(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrNoPatientData:
			response.NotFound(w, "No data found for this patient. Please add data first.")
		default:
			response.InternalServerError(w, "Failed to generate knowledge graph")
		}
		return
	}

	response.Success(w, http.StatusOK, "Knowledge graph generated successfully", graph)
}

func (h *DataEntryHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	graph, err := h.dataUsecase.GetGraph(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrGraphNotFound:
			response.NotFound(w, "No knowledge graph found for this patient")
		default:
			response.InternalServerError(w, "Failed to get knowledge graph")
		}
		return
	}

	response.Success(w, http.StatusOK, "Knowledge graph retrieved successfully", graph)
}

func parsePatientID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return 0, false
	}
	return patientID, true
}
