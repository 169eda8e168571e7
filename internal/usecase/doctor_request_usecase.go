package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPersonNotFound  = errors.New("doctor or patient not found")
	ErrRequestNotFound = errors.New("request not found")
	ErrInvalidStatus   = errors.New("invalid request status")
)

type DoctorRequestUsecase interface {
	CreateRequest(ctx context.Context, req *dto.CreateDoctorRequestRequest) (*entity.DoctorRequest, error)
	ListForPatient(ctx context.Context, patientID int) ([]entity.DoctorRequest, error)
	ListForDoctor(ctx context.Context, doctorID int) ([]entity.DoctorRequest, error)
	SetStatus(ctx context.Context, requestID int64, req *dto.UpdateRequestStatusRequest) (*entity.DoctorRequest, error)
}

type doctorRequestUsecase struct {
	log           *logrus.Logger
	directoryRepo repository.DirectoryRepository
	requestRepo   repository.DoctorRequestRepository
	now           func() time.Time
}

func NewDoctorRequestUsecase(
	log *logrus.Logger,
	directoryRepo repository.DirectoryRepository,
	requestRepo repository.DoctorRequestRepository,
) DoctorRequestUsecase {
	return &doctorRequestUsecase{
		log:           log,
		directoryRepo: directoryRepo,
		requestRepo:   requestRepo,
		now:           time.Now,
	}
}

// CreateRequest validates that both the patient and the doctor resolve in
// the directory, then persists a new pending request with display fields
// denormalized from the current records. Nothing is stored on failure.
func (u *doctorRequestUsecase) CreateRequest(ctx context.Context, req *dto.CreateDoctorRequestRequest) (*entity.DoctorRequest, error) {
	patient, err := u.directoryRepo.FindPatientByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to resolve patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	doctor, err := u.directoryRepo.FindDoctorByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if patient == nil || doctor == nil {
		return nil, ErrPersonNotFound
	}

	hospital := req.Hospital
	if hospital == "" {
		hospital = doctor.HospitalOrDefault()
	}

	// Consent is an explicit opt-in; anything short of allowDataShare=true
	// normalizes to no sharing.
	var dataShare *entity.DataShare
	if req.DataShare != nil && req.DataShare.AllowDataShare {
		dataShare = &entity.DataShare{
			AllowDataShare: true,
			Note:           req.DataShare.Note,
			FileName:       req.DataShare.FileName,
			FileSize:       req.DataShare.FileSize,
			FileType:       req.DataShare.FileType,
			FileContent:    req.DataShare.FileContent,
		}
	}

	now := u.now().UTC()
	request := entity.DoctorRequest{
		ID:          now.UnixMilli(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Hospital:    hospital,
		Note:        req.Note,
		Status:      entity.RequestStatusPending,
		DataShare:   dataShare,
		CreatedAt:   now,
	}

	if err := u.requestRepo.Append(ctx, request); err != nil {
		u.log.Warnf("Failed to store doctor request: %+v", err)
		return nil, err
	}

	return &request, nil
}

func (u *doctorRequestUsecase) ListForPatient(ctx context.Context, patientID int) ([]entity.DoctorRequest, error) {
	requests, err := u.requestRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sortRequestsNewestFirst(requests)
	return requests, nil
}

func (u *doctorRequestUsecase) ListForDoctor(ctx context.Context, doctorID int) ([]entity.DoctorRequest, error) {
	requests, err := u.requestRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	sortRequestsNewestFirst(requests)
	return requests, nil
}

// SetStatus applies the doctor's latest decision. Status always
// overwrites; scheduleNote and proposedSlot only overwrite when a
// non-empty value is supplied. Calling it again on a settled request is
// allowed and simply records the newer decision.
func (u *doctorRequestUsecase) SetStatus(ctx context.Context, requestID int64, req *dto.UpdateRequestStatusRequest) (*entity.DoctorRequest, error) {
	status := entity.RequestStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	request, err := u.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	request.ApplyDecision(status, req.ScheduleNote, req.ProposedSlot, u.now().UTC())

	found, err := u.requestRepo.Replace(ctx, *request)
	if err != nil {
		u.log.Warnf("Failed to persist status for request %d: %+v", requestID, err)
		return nil, err
	}
	if !found {
		return nil, ErrRequestNotFound
	}

	return request, nil
}

func sortRequestsNewestFirst(requests []entity.DoctorRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}
