package entity

import "time"

// RequestStatus represents the status of a doctor request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAccepted   RequestStatus = "accepted"
	RequestStatusDeclined   RequestStatus = "declined"
	RequestStatusReschedule RequestStatus = "reschedule"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined, RequestStatusReschedule:
		return true
	}
	return false
}

// DataShare is a patient's explicit opt-in allowing an uploaded file and
// note to be visible to the requested doctor. Immutable after the request
// is created; a nil DataShare means the patient opted out.
type DataShare struct {
	AllowDataShare bool   `json:"allowDataShare"`
	Note           string `json:"note"`
	FileName       string `json:"fileName,omitempty"`
	FileSize       int64  `json:"fileSize,omitempty"`
	FileType       string `json:"fileType,omitempty"`
	FileContent    string `json:"fileContent,omitempty"`
}

// DoctorRequest is a patient-initiated proposal to engage a specific
// doctor. PatientName, DoctorName and Hospital are captured at creation
// time and are not re-synced if the underlying records change later.
type DoctorRequest struct {
	ID           int64         `json:"id"`
	PatientID    int           `json:"patientId"`
	PatientName  string        `json:"patientName"`
	DoctorID     int           `json:"doctorId"`
	DoctorName   string        `json:"doctorName"`
	Hospital     string        `json:"hospital"`
	Note         string        `json:"note"`
	Status       RequestStatus `json:"status"`
	ScheduleNote *string       `json:"scheduleNote"`
	ProposedSlot *string       `json:"proposedSlot"`
	DataShare    *DataShare    `json:"dataShare"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    *time.Time    `json:"updatedAt,omitempty"`
}

func (r *DoctorRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// ApplyDecision overwrites the status unconditionally and merges the
// doctor-authored fields, keeping the prior scheduleNote/proposedSlot when
// the supplied value is empty. The latest decision always wins; calling
// this repeatedly on the same request is allowed.
func (r *DoctorRequest) ApplyDecision(status RequestStatus, scheduleNote, proposedSlot string, now time.Time) {
	r.Status = status
	if scheduleNote != "" {
		r.ScheduleNote = &scheduleNote
	}
	if proposedSlot != "" {
		r.ProposedSlot = &proposedSlot
	}
	r.UpdatedAt = &now
}
