package store

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Collection names persisted by the record store.
const (
	CollectionNewPatients    = "newPatients"
	CollectionNewDoctors     = "newDoctors"
	CollectionHospitals      = "hospitals"
	CollectionDoctorRequests = "doctorRequests"
	CollectionDataEntries    = "patientDataEntries"
	CollectionGraphs         = "knowledgeGraphs"
	CollectionProfileImages  = "profileImages"
)

// Store is raw key-value persistence of serialized collections. Load
// returns (nil, nil) when the collection has never been saved; Save fully
// replaces prior contents. Writes are last-write-wins; no locking is
// provided and concurrent writers to the same collection can drop updates.
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
}

// LoadAll decodes a named collection into a slice of T. An absent or
// unparsable collection yields an empty slice: corruption is logged and
// recovered from, never propagated. Only a failing storage medium returns
// an error.
func LoadAll[T any](ctx context.Context, s Store, log *logrus.Logger, collection string) ([]T, error) {
	raw, err := s.Load(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warnf("Collection %s is unparsable, treating as empty: %v", collection, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveAll serializes the full slice and replaces the named collection.
func SaveAll[T any](ctx context.Context, s Store, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Save(ctx, collection, raw)
}
