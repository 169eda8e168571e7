package dto

type ImagingFileRequest struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"omitempty"`
	MimeType string `json:"mimeType" validate:"omitempty"`
	Data     string `json:"data" validate:"required"`
	Size     int64  `json:"size" validate:"gte=0"`
}

type SaveDataEntryRequest struct {
	PatientID           int                  `json:"patientId" validate:"required,gt=0"`
	ClinicalNotes       string               `json:"clinicalNotes" validate:"omitempty"`
	PatientData         string               `json:"patientData" validate:"omitempty"`
	PatientDataFileName string               `json:"patientDataFileName" validate:"omitempty"`
	ImagingData         []ImagingFileRequest `json:"imagingData" validate:"omitempty,dive"`
	Timestamp           string               `json:"timestamp" validate:"omitempty"`
}

// SaveDataEntryResponse reports a partial-success outcome explicitly: the
// entry can be saved while the model enrichment failed.
type SaveDataEntryResponse struct {
	DataSaved    bool   `json:"dataSaved"`
	EntryID      int64  `json:"entryId"`
	ModelSuccess bool   `json:"modelSuccess"`
	ModelMessage string `json:"modelMessage"`
}
