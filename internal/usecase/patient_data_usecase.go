package usecase

import (
	"context"
	"errors"
	"time"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/domain/repository"
	"oncoportal/internal/infrastructure/inference"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoPatientData = errors.New("no data found for this patient")
	ErrGraphNotFound = errors.New("no knowledge graph for this patient")
)

const missingGraphMessage = "No model graph available. Please run inference."

type PatientDataUsecase interface {
	// SaveEntry persists a new entry authored by doctorID and then tries
	// to enrich it with a model result. Inference failure does not roll
	// back the save.
	SaveEntry(ctx context.Context, doctorID int, req *dto.SaveDataEntryRequest) (*dto.SaveDataEntryResponse, error)
	ListEntries(ctx context.Context, patientID int) ([]entity.DataEntry, error)
	GenerateGraph(ctx context.Context, patientID int) (*entity.KnowledgeGraph, error)
	GetGraph(ctx context.Context, patientID int) (*entity.KnowledgeGraph, error)
}

type patientDataUsecase struct {
	log       *logrus.Logger
	entryRepo repository.DataEntryRepository
	graphRepo repository.KnowledgeGraphRepository
	runner    inference.Runner
	now       func() time.Time
}

func NewPatientDataUsecase(
	log *logrus.Logger,
	entryRepo repository.DataEntryRepository,
	graphRepo repository.KnowledgeGraphRepository,
	runner inference.Runner,
) PatientDataUsecase {
	return &patientDataUsecase{
		log:       log,
		entryRepo: entryRepo,
		graphRepo: graphRepo,
		runner:    runner,
		now:       time.Now,
	}
}

func (u *patientDataUsecase) SaveEntry(ctx context.Context, doctorID int, req *dto.SaveDataEntryRequest) (*dto.SaveDataEntryResponse, error) {
	now := u.now().UTC()

	timestamp := req.Timestamp
	if timestamp == "" {
		timestamp = now.Format(time.RFC3339)
	}

	var imaging []entity.ImagingFile
	for _, f := range req.ImagingData {
		imaging = append(imaging, entity.ImagingFile{
			Name:     f.Name,
			Type:     f.Type,
			MimeType: f.MimeType,
			Data:     f.Data,
			Size:     f.Size,
		})
	}

	entry := entity.DataEntry{
		ID:                  now.UnixMilli(),
		PatientID:           req.PatientID,
		DoctorID:            doctorID,
		ClinicalNotes:       req.ClinicalNotes,
		PatientData:         req.PatientData,
		PatientDataFileName: req.PatientDataFileName,
		ImagingData:         imaging,
		Timestamp:           timestamp,
	}

	if err := u.entryRepo.Append(ctx, entry); err != nil {
		u.log.Warnf("Failed to store data entry: %+v", err)
		return nil, err
	}

	payload := inference.Payload{
		PatientID:           entry.PatientID,
		DoctorID:            entry.DoctorID,
		ClinicalNotes:       entry.ClinicalNotes,
		PatientData:         entry.PatientData,
		PatientDataFileName: entry.PatientDataFileName,
		ImagingData:         entry.ImagingData,
		Timestamp:           entry.Timestamp,
	}

	result, err := u.runner.Run(ctx, payload)
	if err != nil {
		// Upstream failure degrades to "model result absent": the saved
		// entry stands and there is no automatic retry.
		u.log.Warnf("Model inference failed for entry %d: %v", entry.ID, err)
		return &dto.SaveDataEntryResponse{
			DataSaved:    true,
			EntryID:      entry.ID,
			ModelSuccess: false,
			ModelMessage: err.Error(),
		}, nil
	}

	entry.ModelResult = result
	found, err := u.entryRepo.Replace(ctx, entry)
	if err != nil {
		return nil, err
	}
	if !found {
		u.log.Warnf("Entry %d vanished before model result could be attached", entry.ID)
	}

	return &dto.SaveDataEntryResponse{
		DataSaved:    true,
		EntryID:      entry.ID,
		ModelSuccess: true,
		ModelMessage: "Model inference completed.",
	}, nil
}

func (u *patientDataUsecase) ListEntries(ctx context.Context, patientID int) ([]entity.DataEntry, error) {
	return u.entryRepo.ListByPatient(ctx, patientID)
}

// GenerateGraph materializes the patient's knowledge graph from the
// latest data entry. With no model result the graph is a placeholder with
// status "missing". At most one graph per patient is retained.
func (u *patientDataUsecase) GenerateGraph(ctx context.Context, patientID int) (*entity.KnowledgeGraph, error) {
	entries, err := u.entryRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoPatientData
	}

	latest := entries[len(entries)-1]

	graph := entity.KnowledgeGraph{
		PatientID:   patientID,
		GeneratedAt: u.now().UTC(),
		Nodes:       []entity.GraphNode{},
		Edges:       []entity.GraphEdge{},
	}

	if latest.ModelResult != nil && latest.ModelResult.Graph != nil {
		graph.Status = entity.GraphStatusGenerated
		if latest.ModelResult.Graph.Nodes != nil {
			graph.Nodes = latest.ModelResult.Graph.Nodes
		}
		if latest.ModelResult.Graph.Edges != nil {
			graph.Edges = latest.ModelResult.Graph.Edges
		}
		graph.Metadata = modelMetadata(latest.ModelResult)
	} else {
		graph.Status = entity.GraphStatusMissing
		graph.Metadata = map[string]any{"message": missingGraphMessage}
	}

	if err := u.graphRepo.Upsert(ctx, graph); err != nil {
		u.log.Warnf("Failed to store knowledge graph for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &graph, nil
}

func (u *patientDataUsecase) GetGraph(ctx context.Context, patientID int) (*entity.KnowledgeGraph, error) {
	graph, err := u.graphRepo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if graph == nil {
		return nil, ErrGraphNotFound
	}
	return graph, nil
}

// modelMetadata passes the model's metadata block through opaquely,
// falling back to the summary and risk scores when the model returned no
// dedicated metadata object.
func modelMetadata(result *entity.ModelResult) map[string]any {
	if result.Metadata != nil {
		return result.Metadata
	}
	md := map[string]any{}
	if result.Summary != "" {
		md["summary"] = result.Summary
	}
	if result.RiskScores != nil {
		md["riskScores"] = result.RiskScores
	}
	return md
}
