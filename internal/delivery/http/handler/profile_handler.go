package handler

import (
	"encoding/json"
	"net/http"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/delivery/http/middleware"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/usecase"
	"oncoportal/pkg/response"
	"oncoportal/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// GetProfile returns the authenticated actor's own profile, with the
// side-stored profile image merged in.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	var (
		profile any
		err     error
	)
	switch role {
	case entity.RolePatient:
		profile, err = h.profileUsecase.GetPatientProfile(r.Context(), userID)
	case entity.RoleDoctor:
		profile, err = h.profileUsecase.GetDoctorProfile(r.Context(), userID)
	default:
		response.Forbidden(w, "Profiles exist only for patients and doctors")
		return
	}

	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.profileUsecase.UpdateProfile(r.Context(), userID, role, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	message := "Profile updated successfully"
	if result.Message != "" {
		message = result.Message
	}
	response.Success(w, http.StatusOK, message, result)
}
