package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
	domainRepo "oncoportal/internal/domain/repository"
	"oncoportal/internal/infrastructure/store"

	"github.com/sirupsen/logrus"
)

type doctorRequestRepository struct {
	store store.Store
	log   *logrus.Logger
}

func NewDoctorRequestRepository(s store.Store, log *logrus.Logger) domainRepo.DoctorRequestRepository {
	return &doctorRequestRepository{store: s, log: log}
}

func (r *doctorRequestRepository) load(ctx context.Context) ([]entity.DoctorRequest, error) {
	return store.LoadAll[entity.DoctorRequest](ctx, r.store, r.log, store.CollectionDoctorRequests)
}

func (r *doctorRequestRepository) Append(ctx context.Context, request entity.DoctorRequest) error {
	requests, err := r.load(ctx)
	if err != nil {
		return err
	}
	return store.SaveAll(ctx, r.store, store.CollectionDoctorRequests, append(requests, request))
}

func (r *doctorRequestRepository) FindByID(ctx context.Context, id int64) (*entity.DoctorRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, nil
}

func (r *doctorRequestRepository) ListByPatient(ctx context.Context, patientID int) ([]entity.DoctorRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.DoctorRequest, 0, len(requests))
	for _, req := range requests {
		if req.PatientID == patientID {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

func (r *doctorRequestRepository) ListByDoctor(ctx context.Context, doctorID int) ([]entity.DoctorRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.DoctorRequest, 0, len(requests))
	for _, req := range requests {
		if req.DoctorID == doctorID {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

func (r *doctorRequestRepository) Replace(ctx context.Context, request entity.DoctorRequest) (bool, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range requests {
		if requests[i].ID == request.ID {
			requests[i] = request
			return true, store.SaveAll(ctx, r.store, store.CollectionDoctorRequests, requests)
		}
	}
	return false, nil
}
