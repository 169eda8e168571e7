package handler

import (
	"encoding/json"
	"net/http"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/service"
	"oncoportal/internal/usecase"
	"oncoportal/pkg/response"
	"oncoportal/pkg/validator"
)

type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	validator        *validator.CustomValidator
}

func NewDiagnosisHandler(diagnosisUsecase usecase.DiagnosisUsecase, validator *validator.CustomValidator) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		validator:        validator,
	}
}

func (h *DiagnosisHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.DiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.diagnosisUsecase.Calculate(r.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrUnknownCancerType:
			response.Error(w, http.StatusBadRequest, "Unknown cancer type", nil)
		default:
			response.InternalServerError(w, "Failed to calculate diagnosis")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis calculated successfully", result)
}
