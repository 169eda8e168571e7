package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
	domainRepo "oncoportal/internal/domain/repository"
	"oncoportal/internal/infrastructure/store"

	"github.com/sirupsen/logrus"
)

type dataEntryRepository struct {
	store store.Store
	log   *logrus.Logger
}

func NewDataEntryRepository(s store.Store, log *logrus.Logger) domainRepo.DataEntryRepository {
	return &dataEntryRepository{store: s, log: log}
}

func (r *dataEntryRepository) Append(ctx context.Context, entry entity.DataEntry) error {
	entries, err := store.LoadAll[entity.DataEntry](ctx, r.store, r.log, store.CollectionDataEntries)
	if err != nil {
		return err
	}
	return store.SaveAll(ctx, r.store, store.CollectionDataEntries, append(entries, entry))
}

func (r *dataEntryRepository) ListByPatient(ctx context.Context, patientID int) ([]entity.DataEntry, error) {
	entries, err := store.LoadAll[entity.DataEntry](ctx, r.store, r.log, store.CollectionDataEntries)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.DataEntry, 0, len(entries))
	for _, e := range entries {
		if e.PatientID == patientID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (r *dataEntryRepository) Replace(ctx context.Context, entry entity.DataEntry) (bool, error) {
	entries, err := store.LoadAll[entity.DataEntry](ctx, r.store, r.log, store.CollectionDataEntries)
	if err != nil {
		return false, err
	}
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			return true, store.SaveAll(ctx, r.store, store.CollectionDataEntries, entries)
		}
	}
	return false, nil
}
