package entity

import "time"

// GraphStatus marks whether a knowledge graph was materialized from model
// output or stands in as a placeholder because no model result existed.
type GraphStatus string

const (
	GraphStatusGenerated GraphStatus = "generated"
	GraphStatusMissing   GraphStatus = "missing"
)

type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type GraphEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// GraphData is the node/edge payload produced by the inference service.
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// KnowledgeGraph is the cached per-patient graph derived from the latest
// data entry's model result. PatientID is the unique key; regeneration
// overwrites the prior graph for that patient.
type KnowledgeGraph struct {
	PatientID   int            `json:"patientId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Nodes       []GraphNode    `json:"nodes"`
	Edges       []GraphEdge    `json:"edges"`
	Metadata    map[string]any `json:"metadata"`
	Status      GraphStatus    `json:"status"`
}
