package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
	domainRepo "oncoportal/internal/domain/repository"
	"oncoportal/internal/infrastructure/store"

	"github.com/sirupsen/logrus"
)

type knowledgeGraphRepository struct {
	store store.Store
	log   *logrus.Logger
}

func NewKnowledgeGraphRepository(s store.Store, log *logrus.Logger) domainRepo.KnowledgeGraphRepository {
	return &knowledgeGraphRepository{store: s, log: log}
}

func (r *knowledgeGraphRepository) Upsert(ctx context.Context, graph entity.KnowledgeGraph) error {
	graphs, err := store.LoadAll[entity.KnowledgeGraph](ctx, r.store, r.log, store.CollectionGraphs)
	if err != nil {
		return err
	}
	replaced := false
	for i := range graphs {
		if graphs[i].PatientID == graph.PatientID {
			graphs[i] = graph
			replaced = true
			break
		}
	}
	if !replaced {
		graphs = append(graphs, graph)
	}
	return store.SaveAll(ctx, r.store, store.CollectionGraphs, graphs)
}

func (r *knowledgeGraphRepository) FindByPatient(ctx context.Context, patientID int) (*entity.KnowledgeGraph, error) {
	graphs, err := store.LoadAll[entity.KnowledgeGraph](ctx, r.store, r.log, store.CollectionGraphs)
	if err != nil {
		return nil, err
	}
	for i := range graphs {
		if graphs[i].PatientID == patientID {
			return &graphs[i], nil
		}
	}
	return nil, nil
}
