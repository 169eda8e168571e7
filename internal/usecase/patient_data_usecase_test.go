package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/infrastructure/inference"
	"oncoportal/internal/infrastructure/store"
	"oncoportal/internal/repository"
)

// stubRunner returns a fixed result or error for every Run call.
type stubRunner struct {
	result *entity.ModelResult
	err    error
	calls  int
}

func (s *stubRunner) Run(_ context.Context, _ inference.Payload) (*entity.ModelResult, error) {
	s.calls++
	return s.result, s.err
}

func newDataUsecaseForTest(t *testing.T, runner inference.Runner) *patientDataUsecase {
	t.Helper()
	log := quietLogger()
	memStore := store.NewMemoryStore()
	entryRepo := repository.NewDataEntryRepository(memStore, log)
	graphRepo := repository.NewKnowledgeGraphRepository(memStore, log)
	return NewPatientDataUsecase(log, entryRepo, graphRepo, runner).(*patientDataUsecase)
}

func TestSaveEntryInferenceSucceeds(t *testing.T) {
	runner := &stubRunner{
		result: &entity.ModelResult{
			Graph: &entity.GraphData{
				Nodes: []entity.GraphNode{{ID: "n1", Label: "AFP elevated", Type: "biomarker"}},
				Edges: []entity.GraphEdge{{From: "n1", To: "n2", Label: "indicates"}},
			},
			Summary: "Elevated AFP with hepatic lesion",
		},
	}
	uc := newDataUsecaseForTest(t, runner)
	ctx := context.Background()

	resp, err := uc.SaveEntry(ctx, 1, &dto.SaveDataEntryRequest{
		PatientID:     1,
		ClinicalNotes: "AFP trending up",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.DataSaved || !resp.ModelSuccess {
		t.Fatalf("expected full success, got %+v", resp)
	}
	if resp.ModelMessage != "Model inference completed." {
		t.Errorf("unexpected model message: %q", resp.ModelMessage)
	}

	entries, err := uc.ListEntries(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].ModelResult == nil || entries[0].ModelResult.Graph == nil {
		t.Error("model result should be attached to the stored entry")
	}
}

func TestSaveEntryInferenceFails(t *testing.T) {
	runner := &stubRunner{err: errors.New("model request timed out")}
	uc := newDataUsecaseForTest(t, runner)
	ctx := context.Background()

	resp, err := uc.SaveEntry(ctx, 1, &dto.SaveDataEntryRequest{
		PatientID:     2,
		ClinicalNotes: "baseline labs",
	})
	if err != nil {
		t.Fatalf("inference failure must not fail the save: %v", err)
	}
	if !resp.DataSaved {
		t.Error("entry should be saved despite model failure")
	}
	if resp.ModelSuccess {
		t.Error("model success should be false")
	}
	if resp.ModelMessage != "model request timed out" {
		t.Errorf("unexpected model message: %q", resp.ModelMessage)
	}

	// The entry survives without a model result.
	entries, err := uc.ListEntries(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ModelResult != nil {
		t.Fatalf("expected one bare entry, got %+v", entries)
	}
}

func TestGenerateGraphNoData(t *testing.T) {
	uc := newDataUsecaseForTest(t, &stubRunner{})

	_, err := uc.GenerateGraph(context.Background(), 42)
	if err != ErrNoPatientData {
		t.Fatalf("expected ErrNoPatientData, got %v", err)
	}
}

func TestGenerateGraphFromModelResult(t *testing.T) {
	runner := &stubRunner{
		result: &entity.ModelResult{
			Graph: &entity.GraphData{
				Nodes: []entity.GraphNode{{ID: "n1", Label: "Tumor", Type: "finding"}},
				Edges: []entity.GraphEdge{},
			},
			Metadata: map[string]any{"modelVersion": "2.1"},
		},
	}
	uc := newDataUsecaseForTest(t, runner)
	ctx := context.Background()

	if _, err := uc.SaveEntry(ctx, 1, &dto.SaveDataEntryRequest{PatientID: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	graph, err := uc.GenerateGraph(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if graph.Status != entity.GraphStatusGenerated {
		t.Errorf("expected generated status, got %s", graph.Status)
	}
	if len(graph.Nodes) != 1 || graph.Nodes[0].ID != "n1" {
		t.Errorf("graph nodes not taken from the model result: %+v", graph.Nodes)
	}
	if graph.Metadata["modelVersion"] != "2.1" {
		t.Errorf("model metadata not passed through: %+v", graph.Metadata)
	}

	stored, err := uc.GetGraph(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != entity.GraphStatusGenerated {
		t.Errorf("stored graph should match, got %s", stored.Status)
	}
}

func TestGenerateGraphWithoutModelResult(t *testing.T) {
	runner := &stubRunner{err: errors.New("model not configured")}
	uc := newDataUsecaseForTest(t, runner)
	ctx := context.Background()

	if _, err := uc.SaveEntry(ctx, 1, &dto.SaveDataEntryRequest{PatientID: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	graph, err := uc.GenerateGraph(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if graph.Status != entity.GraphStatusMissing {
		t.Errorf("expected missing status, got %s", graph.Status)
	}
	if len(graph.Nodes) != 0 || len(graph.Edges) != 0 {
		t.Error("placeholder graph should have no nodes or edges")
	}
	if graph.Metadata["message"] != missingGraphMessage {
		t.Errorf("expected explanatory message, got %+v", graph.Metadata)
	}
}

func TestGenerateGraphKeepsOnePerPatient(t *testing.T) {
	runner := &stubRunner{err: errors.New("down")}
	uc := newDataUsecaseForTest(t, runner)
	ctx := context.Background()

	// Deterministic clock so back-to-back entries never share an id.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return base }

	if _, err := uc.SaveEntry(ctx, 1, &dto.SaveDataEntryRequest{PatientID: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GenerateGraph(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second entry now carries a model result; regenerating replaces the
	// placeholder rather than adding a second graph.
	runner.err = nil
	runner.result = &entity.ModelResult{
		Graph: &entity.GraphData{Nodes: []entity.GraphNode{{ID: "n1"}}},
	}
	uc.now = func() time.Time { return base.Add(time.Second) }
	if _, err := uc.SaveEntry(ctx, 1, &dto.SaveDataEntryRequest{PatientID: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GenerateGraph(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	graph, err := uc.GetGraph(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if graph.Status != entity.GraphStatusGenerated {
		t.Errorf("regeneration should replace the placeholder, got %s", graph.Status)
	}
}

func TestGetGraphNotFound(t *testing.T) {
	uc := newDataUsecaseForTest(t, &stubRunner{})

	_, err := uc.GetGraph(context.Background(), 99)
	if err != ErrGraphNotFound {
		t.Fatalf("expected ErrGraphNotFound, got %v", err)
	}
}
