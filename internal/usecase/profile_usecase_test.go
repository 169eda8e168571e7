package usecase

import (
	"context"
	"testing"
	"time"

	"oncoportal/config"
	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/infrastructure/store"
	"oncoportal/internal/repository"
	"oncoportal/pkg/jwt"
)

func newProfileUsecaseForTest(t *testing.T) (ProfileUsecase, AuthUsecase) {
	t.Helper()
	log := quietLogger()
	memStore := store.NewMemoryStore()
	directoryRepo := repository.NewDirectoryRepository(memStore, log)
	imageRepo := repository.NewProfileImageRepository(memStore, log)
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	profileUC := NewProfileUsecase(log, directoryRepo, imageRepo)
	authUC := NewAuthUsecase(log, directoryRepo, newMemorySessionRepo(), jwtService)
	return profileUC, authUC
}

func TestUpdateStoredPatientPersists(t *testing.T) {
	profileUC, authUC := newProfileUsecaseForTest(t)
	ctx := context.Background()

	user, err := authUC.Signup(ctx, &dto.SignupRequest{
		Role:  "patient",
		Name:  "Zara Iqbal",
		Email: "zara@test.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := profileUC.UpdateProfile(ctx, user.ID, entity.RolePatient, &dto.UpdateProfileRequest{
		Phone:      "+92 333 9998877",
		BloodGroup: "O+",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "" {
		t.Errorf("a genuine update should carry no read-only message, got %q", resp.Message)
	}

	profile, err := profileUC.GetPatientProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Phone != "+92 333 9998877" || profile.BloodGroup != "O+" {
		t.Errorf("update not persisted: %+v", profile.Patient)
	}
	// Untouched fields survive the merge.
	if profile.Name != "Zara Iqbal" {
		t.Errorf("name should be unchanged, got %q", profile.Name)
	}
}

func TestUpdateSeedPatientIsReadOnly(t *testing.T) {
	profileUC, _ := newProfileUsecaseForTest(t)
	ctx := context.Background()

	resp, err := profileUC.UpdateProfile(ctx, 1, entity.RolePatient, &dto.UpdateProfileRequest{
		Name: "Renamed Patient",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != seedReadOnlyMessage {
		t.Errorf("expected the read-only message, got %q", resp.Message)
	}
	// The session echo reflects the change anyway.
	if resp.User.Name != "Renamed Patient" {
		t.Errorf("session echo should carry the new name, got %q", resp.User.Name)
	}

	// The directory record itself is untouched.
	profile, err := profileUC.GetPatientProfile(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "Ahmed Ali Khan" {
		t.Errorf("seed record should be unchanged, got %q", profile.Name)
	}
}

func TestSeedProfileImageSideStore(t *testing.T) {
	profileUC, _ := newProfileUsecaseForTest(t)
	ctx := context.Background()

	// Only the image survives an update against a seed doctor.
	_, err := profileUC.UpdateProfile(ctx, 1, entity.RoleDoctor, &dto.UpdateProfileRequest{
		ProfileImage: "data:image/png;base64,abc123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := profileUC.GetDoctorProfile(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ProfileImage != "data:image/png;base64,abc123" {
		t.Errorf("stored image should be merged into the profile, got %q", profile.ProfileImage)
	}
	if profile.Name != "Dr. Fatima Sheikh" {
		t.Errorf("everything else stays seed data, got %q", profile.Name)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	profileUC, _ := newProfileUsecaseForTest(t)

	if _, err := profileUC.GetPatientProfile(context.Background(), 404); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := profileUC.GetDoctorProfile(context.Background(), 404); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
