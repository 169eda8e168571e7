package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
)

// DoctorRequestRepository persists doctor requests in storage order.
// Lookups return (nil, nil) when no request matches.
type DoctorRequestRepository interface {
	Append(ctx context.Context, request entity.DoctorRequest) error
	FindByID(ctx context.Context, id int64) (*entity.DoctorRequest, error)
	ListByPatient(ctx context.Context, patientID int) ([]entity.DoctorRequest, error)
	ListByDoctor(ctx context.Context, doctorID int) ([]entity.DoctorRequest, error)

	// Replace swaps the stored request with the same id and persists the
	// full collection. The bool reports whether the id was found.
	Replace(ctx context.Context, request entity.DoctorRequest) (bool, error)
}
