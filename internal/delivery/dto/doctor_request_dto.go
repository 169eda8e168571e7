package dto

// DataShareRequest is the consent block on a new doctor request. It is
// only honored when AllowDataShare is explicitly true.
type DataShareRequest struct {
	AllowDataShare bool   `json:"allowDataShare"`
	Note           string `json:"note"`
	FileName       string `json:"fileName"`
	FileSize       int64  `json:"fileSize"`
	FileType       string `json:"fileType"`
	FileContent    string `json:"fileContent"`
}

type CreateDoctorRequestRequest struct {
	PatientID int               `json:"patientId" validate:"required,gt=0"`
	DoctorID  int               `json:"doctorId" validate:"required,gt=0"`
	Hospital  string            `json:"hospital" validate:"omitempty"`
	Note      string            `json:"note" validate:"omitempty"`
	DataShare *DataShareRequest `json:"dataShare" validate:"omitempty"`
}

type UpdateRequestStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=pending accepted declined reschedule"`
	ScheduleNote string `json:"scheduleNote" validate:"omitempty"`
	ProposedSlot string `json:"proposedSlot" validate:"omitempty"`
}
