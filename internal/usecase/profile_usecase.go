package usecase

import (
	"context"

	"oncoportal/internal/converter"
	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const seedReadOnlyMessage = "Profile updated (seed data is read-only)"

type ProfileUsecase interface {
	GetPatientProfile(ctx context.Context, id int) (*dto.PatientProfileResponse, error)
	GetDoctorProfile(ctx context.Context, id int) (*dto.DoctorProfileResponse, error)

	// UpdateProfile merge-updates a signed-up record. For seed records the
	// directory is read-only, so only the session echo (and the profile
	// image side collection) reflect the change.
	UpdateProfile(ctx context.Context, userID int, role entity.Role, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
}

type profileUsecase struct {
	log           *logrus.Logger
	directoryRepo repository.DirectoryRepository
	imageRepo     repository.ProfileImageRepository
}

func NewProfileUsecase(
	log *logrus.Logger,
	directoryRepo repository.DirectoryRepository,
	imageRepo repository.ProfileImageRepository,
) ProfileUsecase {
	return &profileUsecase{
		log:           log,
		directoryRepo: directoryRepo,
		imageRepo:     imageRepo,
	}
}

func (u *profileUsecase) storedImage(ctx context.Context, userID int, role entity.Role) string {
	image, err := u.imageRepo.Find(ctx, userID, role)
	if err != nil {
		u.log.Warnf("Failed to load profile image for %s %d: %+v", role, userID, err)
		return ""
	}
	if image == nil {
		return ""
	}
	return image.Image
}

func (u *profileUsecase) GetPatientProfile(ctx context.Context, id int) (*dto.PatientProfileResponse, error) {
	patient, err := u.directoryRepo.FindPatientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}
	return converter.PatientToProfileResponse(patient, u.storedImage(ctx, id, entity.RolePatient)), nil
}

func (u *profileUsecase) GetDoctorProfile(ctx context.Context, id int) (*dto.DoctorProfileResponse, error) {
	doctor, err := u.directoryRepo.FindDoctorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrUserNotFound
	}
	return converter.DoctorToProfileResponse(doctor, u.storedImage(ctx, id, entity.RoleDoctor)), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID int, role entity.Role, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	switch role {
	case entity.RolePatient:
		return u.updatePatient(ctx, userID, req)
	case entity.RoleDoctor:
		return u.updateDoctor(ctx, userID, req)
	default:
		return nil, ErrUserNotFound
	}
}

func (u *profileUsecase) updatePatient(ctx context.Context, userID int, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	patient, err := u.directoryRepo.FindPatientByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	merged := *patient
	if req.Name != "" {
		merged.Name = req.Name
	}
	if req.Email != "" {
		merged.Email = req.Email
	}
	if req.Phone != "" {
		merged.Phone = req.Phone
	}
	if req.Age != nil {
		merged.Age = *req.Age
	}
	if req.Gender != "" {
		merged.Gender = req.Gender
	}
	if req.Address != "" {
		merged.Address = req.Address
	}
	if req.BloodGroup != "" {
		merged.BloodGroup = req.BloodGroup
	}
	if req.ProfileImage != "" {
		merged.ProfileImage = req.ProfileImage
	}

	updated, err := u.directoryRepo.UpdateStoredPatient(ctx, merged)
	if err != nil {
		return nil, err
	}

	user := converter.PatientToSessionUser(&merged)
	if updated {
		return &dto.UpdateProfileResponse{User: user}, nil
	}

	// Seed record: persist only the image to the side collection, keep the
	// directory untouched and reflect the rest in the session echo.
	if req.ProfileImage != "" {
		if err := u.imageRepo.Put(ctx, entity.ProfileImage{UserID: userID, Role: entity.RolePatient, Image: req.ProfileImage}); err != nil {
			return nil, err
		}
	}
	return &dto.UpdateProfileResponse{User: user, Message: seedReadOnlyMessage}, nil
}

func (u *profileUsecase) updateDoctor(ctx context.Context, userID int, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	doctor, err := u.directoryRepo.FindDoctorByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrUserNotFound
	}

	merged := *doctor
	if req.Name != "" {
		merged.Name = req.Name
	}
	if req.Email != "" {
		merged.Email = req.Email
	}
	if req.Phone != "" {
		merged.Phone = req.Phone
	}
	if req.Specialization != "" {
		merged.Specialization = req.Specialization
	}
	if req.Qualifications != "" {
		merged.Qualifications = req.Qualifications
	}
	if req.Experience != "" {
		merged.Experience = req.Experience
	}
	if req.Hospital != "" {
		merged.Hospital = req.Hospital
	}
	if req.ProfileImage != "" {
		merged.ProfileImage = req.ProfileImage
	}

	updated, err := u.directoryRepo.UpdateStoredDoctor(ctx, merged)
	if err != nil {
		return nil, err
	}

	user := converter.DoctorToSessionUser(&merged)
	if updated {
		return &dto.UpdateProfileResponse{User: user}, nil
	}

	if req.ProfileImage != "" {
		if err := u.imageRepo.Put(ctx, entity.ProfileImage{UserID: userID, Role: entity.RoleDoctor, Image: req.ProfileImage}); err != nil {
			return nil, err
		}
	}
	return &dto.UpdateProfileResponse{User: user, Message: seedReadOnlyMessage}, nil
}
