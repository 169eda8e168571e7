package entity

// ImagingFile is one uploaded imaging attachment on a data entry. Data is
// the base64 payload produced by the uploader.
type ImagingFile struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
	Size     int64  `json:"size"`
}

// ModelResult is the output of the external inference service attached to
// a data entry after a successful call. Metadata is an opaque pass-through
// of whatever the model returned alongside the graph.
type ModelResult struct {
	Graph      *GraphData     `json:"graph,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Summary    string         `json:"summary,omitempty"`
	RiskScores map[string]any `json:"riskScores,omitempty"`
}

// DataEntry is clinician-submitted multi-modal case data for one patient.
// ModelResult is populated at most once, by the inference call issued right
// after the entry is saved; if that call fails it stays nil permanently.
type DataEntry struct {
	ID                  int64         `json:"id"`
	PatientID           int           `json:"patientId"`
	DoctorID            int           `json:"doctorId"`
	ClinicalNotes       string        `json:"clinicalNotes,omitempty"`
	PatientData         string        `json:"patientData,omitempty"`
	PatientDataFileName string        `json:"patientDataFileName,omitempty"`
	ImagingData         []ImagingFile `json:"imagingData,omitempty"`
	Timestamp           string        `json:"timestamp"`
	ModelResult         *ModelResult  `json:"modelResult,omitempty"`
}
