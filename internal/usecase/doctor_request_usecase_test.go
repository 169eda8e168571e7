package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/infrastructure/store"
	"oncoportal/internal/repository"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newRequestUsecaseForTest(t *testing.T) (*doctorRequestUsecase, store.Store) {
	t.Helper()
	log := quietLogger()
	memStore := store.NewMemoryStore()
	directoryRepo := repository.NewDirectoryRepository(memStore, log)
	requestRepo := repository.NewDoctorRequestRepository(memStore, log)
	uc := NewDoctorRequestUsecase(log, directoryRepo, requestRepo).(*doctorRequestUsecase)
	return uc, memStore
}

func TestCreateRequestSeedPeople(t *testing.T) {
	uc, _ := newRequestUsecaseForTest(t)
	ctx := context.Background()

	request, err := uc.CreateRequest(ctx, &dto.CreateDoctorRequestRequest{
		PatientID: 1,
		DoctorID:  1,
		Note:      "Need a second opinion",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if request.Status != entity.RequestStatusPending {
		t.Errorf("new request should be pending, got %s", request.Status)
	}
	if request.PatientName != "Ahmed Ali Khan" || request.DoctorName != "Dr. Fatima Sheikh" {
		t.Errorf("names not denormalized: %q / %q", request.PatientName, request.DoctorName)
	}
	if request.Hospital != "Aga Khan University Hospital" {
		t.Errorf("expected doctor's hospital as fallback, got %q", request.Hospital)
	}
	if request.ID == 0 {
		t.Error("request id should be assigned")
	}

	listed, err := uc.ListForPatient(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != request.ID {
		t.Fatalf("expected the stored request back, got %+v", listed)
	}
}

func TestCreateRequestUnknownDoctor(t *testing.T) {
	uc, memStore := newRequestUsecaseForTest(t)
	ctx := context.Background()

	_, err := uc.CreateRequest(ctx, &dto.CreateDoctorRequestRequest{
		PatientID: 1,
		DoctorID:  999,
	})
	if err != ErrPersonNotFound {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}

	// Nothing written on failure.
	raw, err := memStore.Load(ctx, store.CollectionDoctorRequests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != nil {
		t.Errorf("collection should be untouched, got %s", raw)
	}
}

func TestCreateRequestDataShareNormalization(t *testing.T) {
	uc, _ := newRequestUsecaseForTest(t)
	ctx := context.Background()

	// allowDataShare=false discards the whole block, attachment included.
	request, err := uc.CreateRequest(ctx, &dto.CreateDoctorRequestRequest{
		PatientID: 2,
		DoctorID:  1,
		DataShare: &dto.DataShareRequest{AllowDataShare: false, FileName: "report.pdf"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.DataShare != nil {
		t.Errorf("opt-out data share should be dropped, got %+v", request.DataShare)
	}

	request, err = uc.CreateRequest(ctx, &dto.CreateDoctorRequestRequest{
		PatientID: 2,
		DoctorID:  1,
		DataShare: &dto.DataShareRequest{AllowDataShare: true, FileName: "report.pdf", FileSize: 1024},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.DataShare == nil || request.DataShare.FileName != "report.pdf" {
		t.Errorf("opt-in data share should be kept, got %+v", request.DataShare)
	}
}

func TestSetStatusLatestDecisionWins(t *testing.T) {
	uc, _ := newRequestUsecaseForTest(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return base }

	request, err := uc.CreateRequest(ctx, &dto.CreateDoctorRequestRequest{PatientID: 1, DoctorID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc.now = func() time.Time { return base.Add(time.Minute) }
	first, err := uc.SetStatus(ctx, request.ID, &dto.UpdateRequestStatusRequest{
		Status:       "reschedule",
		ScheduleNote: "Clinic closed that week",
		ProposedSlot: "2025-06-10 10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != entity.RequestStatusReschedule {
		t.Errorf("expected reschedule, got %s", first.Status)
	}

	// A second decision on a settled request simply records the newer one.
	uc.now = func() time.Time { return base.Add(2 * time.Minute) }
	second, err := uc.SetStatus(ctx, request.ID, &dto.UpdateRequestStatusRequest{Status: "accepted"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Status != entity.RequestStatusAccepted {
		t.Errorf("expected accepted, got %s", second.Status)
	}
	if second.UpdatedAt == nil || first.UpdatedAt == nil || !second.UpdatedAt.After(*first.UpdatedAt) {
		t.Error("UpdatedAt should strictly increase across decisions")
	}

	// Empty scheduleNote/proposedSlot preserve the prior values.
	if second.ScheduleNote == nil || *second.ScheduleNote != "Clinic closed that week" {
		t.Errorf("scheduleNote should survive an empty update, got %v", second.ScheduleNote)
	}
	if second.ProposedSlot == nil || *second.ProposedSlot != "2025-06-10 10:00" {
		t.Errorf("proposedSlot should survive an empty update, got %v", second.ProposedSlot)
	}
}

func TestSetStatusUnknownRequest(t *testing.T) {
	uc, _ := newRequestUsecaseForTest(t)

	_, err := uc.SetStatus(context.Background(), 12345, &dto.UpdateRequestStatusRequest{Status: "accepted"})
	if err != ErrRequestNotFound {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestSetStatusInvalidStatus(t *testing.T) {
	uc, _ := newRequestUsecaseForTest(t)

	_, err := uc.SetStatus(context.Background(), 1, &dto.UpdateRequestStatusRequest{Status: "approved"})
	if err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListForDoctorNewestFirst(t *testing.T) {
	uc, _ := newRequestUsecaseForTest(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		offset := time.Duration(i) * time.Hour
		uc.now = func() time.Time { return base.Add(offset) }
		if _, err := uc.CreateRequest(ctx, &dto.CreateDoctorRequestRequest{PatientID: 1, DoctorID: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	listed, err := uc.ListForDoctor(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].CreatedAt.After(listed[i-1].CreatedAt) {
			t.Errorf("requests not sorted newest first at index %d", i)
		}
	}
}
