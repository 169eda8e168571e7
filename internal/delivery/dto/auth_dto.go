package dto

// SignupRequest covers both roles; the role-specific fields are validated
// in the usecase after the common ones pass.
type SignupRequest struct {
	Role  string `json:"role" validate:"required,oneof=patient doctor"`
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty"`

	// Patient fields
	Age        int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender     string `json:"gender" validate:"omitempty"`
	Address    string `json:"address" validate:"omitempty"`
	BloodGroup string `json:"bloodGroup" validate:"omitempty"`

	// Doctor fields
	Specialization string `json:"specialization" validate:"omitempty"`
	Qualifications string `json:"qualifications" validate:"omitempty"`
	Experience     string `json:"experience" validate:"omitempty"`
	Hospital       string `json:"hospital" validate:"omitempty"`
}

// LoginRequest carries a password field for form parity, but the mock
// identity seam only checks that the email resolves to a directory record.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionUser is the minimal actor record echoed to the client after
// signup, login and profile updates.
type SessionUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	User         SessionUser `json:"user"`
}
