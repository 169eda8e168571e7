package dto

import "oncoportal/internal/domain/entity"

// UpdateProfileRequest is a partial update; empty fields keep their prior
// values. Age uses a pointer so zero can be told apart from "not sent".
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty"`

	Age        *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender     string `json:"gender" validate:"omitempty"`
	Address    string `json:"address" validate:"omitempty"`
	BloodGroup string `json:"bloodGroup" validate:"omitempty"`

	Specialization string `json:"specialization" validate:"omitempty"`
	Qualifications string `json:"qualifications" validate:"omitempty"`
	Experience     string `json:"experience" validate:"omitempty"`
	Hospital       string `json:"hospital" validate:"omitempty"`

	ProfileImage string `json:"profileImage" validate:"omitempty"`
}

// PatientProfileResponse mirrors the patient record with the actor role
// and the merged profile image.
type PatientProfileResponse struct {
	entity.Patient
	Role entity.Role `json:"role"`
}

type DoctorProfileResponse struct {
	entity.Doctor
	Role entity.Role `json:"role"`
}

// UpdateProfileResponse echoes the session user; Message is set when the
// update hit a read-only seed record and was only reflected in-session.
type UpdateProfileResponse struct {
	User    SessionUser `json:"user"`
	Message string      `json:"message,omitempty"`
}
