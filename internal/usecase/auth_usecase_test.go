package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"oncoportal/config"
	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/infrastructure/store"
	"oncoportal/internal/repository"
	"oncoportal/pkg/jwt"
)

// memorySessionRepo is an in-process SessionRepository for tests.
type memorySessionRepo struct {
	tokens map[string]bool
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{tokens: make(map[string]bool)}
}

func (r *memorySessionRepo) key(kind string, userID int, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", kind, userID, tokenID)
}

func (r *memorySessionRepo) StoreToken(_ context.Context, kind string, userID int, tokenID string, _ time.Duration) error {
	r.tokens[r.key(kind, userID, tokenID)] = true
	return nil
}

func (r *memorySessionRepo) DeleteToken(_ context.Context, kind string, userID int, tokenID string) error {
	delete(r.tokens, r.key(kind, userID, tokenID))
	return nil
}

func (r *memorySessionRepo) TokenExists(_ context.Context, kind string, userID int, tokenID string) (bool, error) {
	return r.tokens[r.key(kind, userID, tokenID)], nil
}

func newAuthUsecaseForTest(t *testing.T) (AuthUsecase, *memorySessionRepo) {
	t.Helper()
	log := quietLogger()
	memStore := store.NewMemoryStore()
	directoryRepo := repository.NewDirectoryRepository(memStore, log)
	sessionRepo := newMemorySessionRepo()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthUsecase(log, directoryRepo, sessionRepo, jwtService), sessionRepo
}

func TestSignupAssignsIDsAboveSeedRange(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)
	ctx := context.Background()

	first, err := uc.Signup(ctx, &dto.SignupRequest{
		Role:  "patient",
		Name:  "New Patient",
		Email: "new.patient@test.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1001 {
		t.Errorf("first signup should get id 1001, got %d", first.ID)
	}

	second, err := uc.Signup(ctx, &dto.SignupRequest{
		Role:  "doctor",
		Name:  "Dr. New",
		Email: "new.doctor@test.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != 1002 {
		t.Errorf("second signup should get id 1002, got %d", second.ID)
	}
	if second.Role != "doctor" {
		t.Errorf("expected doctor role, got %s", second.Role)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)
	ctx := context.Background()

	// Seed email.
	_, err := uc.Signup(ctx, &dto.SignupRequest{Role: "patient", Name: "X", Email: "doctor@test.com"})
	if err != ErrEmailAlreadyExists {
		t.Fatalf("expected ErrEmailAlreadyExists for a seed email, got %v", err)
	}

	// Previously signed-up email.
	if _, err := uc.Signup(ctx, &dto.SignupRequest{Role: "patient", Name: "X", Email: "dup@test.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = uc.Signup(ctx, &dto.SignupRequest{Role: "doctor", Name: "Y", Email: "dup@test.com"})
	if err != ErrEmailAlreadyExists {
		t.Fatalf("expected ErrEmailAlreadyExists for a stored email, got %v", err)
	}
}

func TestSignupDoctorDefaults(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)
	ctx := context.Background()

	user, err := uc.Signup(ctx, &dto.SignupRequest{
		Role:  "doctor",
		Name:  "Dr. Fresh",
		Email: "fresh@test.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doctor, err := uc.GetCurrentUser(ctx, user.ID, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doctor.Name != "Dr. Fresh" {
		t.Errorf("unexpected name %q", doctor.Name)
	}
}

func TestLoginBySeedEmail(t *testing.T) {
	uc, sessions := newAuthUsecaseForTest(t)
	ctx := context.Background()

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Email: "doctor@test.com", Password: "ignored"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens.User.Role != "doctor" || tokens.User.Name != "Dr. Fatima Sheikh" {
		t.Errorf("unexpected session user: %+v", tokens.User)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if len(sessions.tokens) != 2 {
		t.Errorf("expected access and refresh session entries, got %d", len(sessions.tokens))
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@test.com"})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)
	ctx := context.Background()

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Email: "patient@test.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	refreshed, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.User.ID != tokens.User.ID {
		t.Errorf("refresh should keep the same user, got %d", refreshed.User.ID)
	}

	// The old refresh token was revoked by the rotation.
	_, err = uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != ErrTokenRevoked {
		t.Fatalf("expected ErrTokenRevoked for the rotated token, got %v", err)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	uc, _ := newAuthUsecaseForTest(t)
	ctx := context.Background()

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Email: "patient@test.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for an access token, got %v", err)
	}
}
