package usecase

import (
	"context"
	"testing"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/infrastructure/store"
	"oncoportal/internal/repository"
	"oncoportal/internal/seed"
)

func newDirectoryUsecaseForTest(t *testing.T) DirectoryUsecase {
	t.Helper()
	log := quietLogger()
	memStore := store.NewMemoryStore()
	return NewDirectoryUsecase(log, repository.NewDirectoryRepository(memStore, log))
}

func TestHospitalsSeedThenStored(t *testing.T) {
	uc := newDirectoryUsecaseForTest(t)
	ctx := context.Background()

	seedCount := len(seed.Hospitals())

	added, err := uc.AddHospital(ctx, &dto.AddHospitalRequest{
		Name:       "Indus Hospital",
		City:       "Karachi",
		BranchCode: "KHI09",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hospitals, err := uc.Hospitals(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hospitals) != seedCount+1 {
		t.Fatalf("expected %d hospitals, got %d", seedCount+1, len(hospitals))
	}
	// Seed records come first, appended ones after.
	if hospitals[len(hospitals)-1].Name != added.Name {
		t.Errorf("appended hospital should be last, got %q", hospitals[len(hospitals)-1].Name)
	}
}

func TestAddHospitalDuplicateName(t *testing.T) {
	uc := newDirectoryUsecaseForTest(t)

	_, err := uc.AddHospital(context.Background(), &dto.AddHospitalRequest{
		Name:       "Aga Khan University Hospital",
		City:       "Karachi",
		BranchCode: "KHI01",
	})
	if err != ErrHospitalAlreadyExists {
		t.Fatalf("expected ErrHospitalAlreadyExists, got %v", err)
	}
}

func TestDoctorsByHospital(t *testing.T) {
	uc := newDirectoryUsecaseForTest(t)
	ctx := context.Background()

	doctors, err := uc.DoctorsByHospital(ctx, "Aga Khan University Hospital")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 1 || doctors[0].Name != "Dr. Fatima Sheikh" {
		t.Fatalf("expected only Dr. Fatima Sheikh, got %+v", doctors)
	}

	// "all" and empty both mean no filtering.
	for _, filter := range []string{"all", ""} {
		doctors, err = uc.DoctorsByHospital(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(doctors) != len(seed.Doctors()) {
			t.Errorf("filter %q: expected all %d doctors, got %d", filter, len(seed.Doctors()), len(doctors))
		}
	}
}

func TestPatientsForDoctor(t *testing.T) {
	uc := newDirectoryUsecaseForTest(t)
	ctx := context.Background()

	patients, err := uc.PatientsForDoctor(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 3 {
		t.Fatalf("doctor 1 has 3 assigned patients, got %d", len(patients))
	}
	for _, p := range patients {
		if p.ID > 3 {
			t.Errorf("patient %d is not assigned to doctor 1", p.ID)
		}
	}

	// Unknown doctor yields an empty list, not an error.
	patients, err = uc.PatientsForDoctor(ctx, 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 0 {
		t.Errorf("expected no patients for an unknown doctor, got %d", len(patients))
	}
}

func TestPatientHistoryAccessors(t *testing.T) {
	uc := newDirectoryUsecaseForTest(t)
	ctx := context.Background()

	history, err := uc.PatientMedicalHistory(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) == 0 {
		t.Error("seed patient 1 has medical history")
	}

	results, err := uc.PatientTestResults(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Error("seed patient 1 has test results")
	}

	// Missing patients degrade to empty collections.
	history, err = uc.PatientMedicalHistory(ctx, 404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Errorf("expected empty history for a missing patient, got %+v", history)
	}
}
