package usecase

import (
	"context"
	"errors"

	"oncoportal/internal/converter"
	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/domain/repository"
	"oncoportal/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered, please use a different email or login")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role selected")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
)

// signupIDBase keeps signup ids clear of the seeded directory ids.
const signupIDBase = 1000

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SessionUser, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int, role entity.Role) (*dto.SessionUser, error)
}

type authUsecase struct {
	log           *logrus.Logger
	directoryRepo repository.DirectoryRepository
	sessionRepo   repository.SessionRepository
	jwtService    *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	directoryRepo repository.DirectoryRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:           log,
		directoryRepo: directoryRepo,
		sessionRepo:   sessionRepo,
		jwtService:    jwtService,
	}
}

// Signup appends a new directory record. Ids start at 1000 and grow with
// the combined count of signed-up patients and doctors, so they never
// collide with seed ids.
func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SessionUser, error) {
	role := entity.Role(req.Role)
	if role != entity.RolePatient && role != entity.RoleDoctor {
		return nil, ErrInvalidRole
	}

	existingRole, _, _, err := u.directoryRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existingRole != "" {
		return nil, ErrEmailAlreadyExists
	}

	patientCount, doctorCount, err := u.directoryRepo.StoredCounts(ctx)
	if err != nil {
		return nil, err
	}
	newID := signupIDBase + patientCount + doctorCount + 1

	switch role {
	case entity.RolePatient:
		patient := entity.Patient{
			ID:             newID,
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Age:            req.Age,
			Gender:         req.Gender,
			Address:        req.Address,
			BloodGroup:     req.BloodGroup,
			Appointments:   []entity.Appointment{},
			MedicalHistory: []entity.MedicalRecord{},
			TestResults:    []entity.TestResult{},
		}
		if err := u.directoryRepo.AppendPatient(ctx, patient); err != nil {
			u.log.Warnf("Failed to store new patient: %+v", err)
			return nil, err
		}
		user := converter.PatientToSessionUser(&patient)
		return &user, nil

	default:
		experience := req.Experience
		if experience == "" {
			experience = "0 years"
		}
		hospital := req.Hospital
		if hospital == "" {
			hospital = entity.DefaultHospital
		}
		doctor := entity.Doctor{
			ID:             newID,
			Name:           req.Name,
			Email:          req.Email,
			Specialization: req.Specialization,
			Phone:          req.Phone,
			Experience:     experience,
			Qualifications: req.Qualifications,
			Hospital:       hospital,
			Patients:       []int{},
		}
		if err := u.directoryRepo.AppendDoctor(ctx, doctor); err != nil {
			u.log.Warnf("Failed to store new doctor: %+v", err)
			return nil, err
		}
		user := converter.DoctorToSessionUser(&doctor)
		return &user, nil
	}
}

// Login is the mock identity seam: a matching directory email is treated
// as valid credentials and the password is never verified. Anything built
// on top of this must not ship as real authentication.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	role, patient, doctor, err := u.directoryRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	var user dto.SessionUser
	switch role {
	case entity.RolePatient:
		user = converter.PatientToSessionUser(patient)
	case entity.RoleDoctor:
		user = converter.DoctorToSessionUser(doctor)
	default:
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) issueTokens(ctx context.Context, user dto.SessionUser) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}
	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.StoreToken(ctx, "access", user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		return nil, err
	}
	if err := u.sessionRepo.StoreToken(ctx, "refresh", user.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:         user,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int, accessTokenID, refreshTokenID string) error {
	if err := u.sessionRepo.DeleteToken(ctx, "access", userID, accessTokenID); err != nil {
		return err
	}
	if refreshTokenID != "" {
		return u.sessionRepo.DeleteToken(ctx, "refresh", userID, refreshTokenID)
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.sessionRepo.TokenExists(ctx, "refresh", claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	user, err := u.GetCurrentUser(ctx, claims.UserID, entity.Role(claims.Role))
	if err != nil {
		return nil, err
	}

	// Rotate: the old refresh token dies with the new issuance.
	if err := u.sessionRepo.DeleteToken(ctx, "refresh", claims.UserID, claims.TokenID); err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, *user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int, role entity.Role) (*dto.SessionUser, error) {
	switch role {
	case entity.RolePatient:
		patient, err := u.directoryRepo.FindPatientByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrUserNotFound
		}
		user := converter.PatientToSessionUser(patient)
		return &user, nil
	case entity.RoleDoctor:
		doctor, err := u.directoryRepo.FindDoctorByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrUserNotFound
		}
		user := converter.DoctorToSessionUser(doctor)
		return &user, nil
	default:
		return nil, ErrUserNotFound
	}
}
