package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
)

// DataEntryRepository persists patient data entries in insertion order;
// the latest entry for a patient is the last element after filtering.
type DataEntryRepository interface {
	Append(ctx context.Context, entry entity.DataEntry) error
	ListByPatient(ctx context.Context, patientID int) ([]entity.DataEntry, error)

	// Replace swaps the stored entry with the same id, used to attach the
	// model result after a successful inference call.
	Replace(ctx context.Context, entry entity.DataEntry) (bool, error)
}

// KnowledgeGraphRepository caches at most one graph per patient.
type KnowledgeGraphRepository interface {
	// Upsert replaces the patient's existing graph or appends a new one.
	Upsert(ctx context.Context, graph entity.KnowledgeGraph) error
	FindByPatient(ctx context.Context, patientID int) (*entity.KnowledgeGraph, error)
}
