package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
)

// DirectoryRepository is the unified read view over seed directory data
// and user-created records, plus the append/update paths used at signup
// and profile editing. Merged lists always put seed entries first; seed
// ids are lower, so natural ordering is preserved.
type DirectoryRepository interface {
	AllPatients(ctx context.Context) ([]entity.Patient, error)
	AllDoctors(ctx context.Context) ([]entity.Doctor, error)
	AllHospitals(ctx context.Context) ([]entity.Hospital, error)

	FindPatientByID(ctx context.Context, id int) (*entity.Patient, error)
	FindDoctorByID(ctx context.Context, id int) (*entity.Doctor, error)

	// FindByEmail scans patients then doctors with a case-sensitive exact
	// match and returns the role of the first hit, or ("", nil, nil, nil)
	// when no record matches.
	FindByEmail(ctx context.Context, email string) (entity.Role, *entity.Patient, *entity.Doctor, error)

	DoctorsForHospital(ctx context.Context, hospitalName string) ([]entity.Doctor, error)
	PatientsForDoctor(ctx context.Context, doctorID int) ([]entity.Patient, error)

	// StoredCounts reports how many user-created patients and doctors
	// exist, which drives signup id assignment.
	StoredCounts(ctx context.Context) (patients int, doctors int, err error)

	AppendPatient(ctx context.Context, patient entity.Patient) error
	AppendDoctor(ctx context.Context, doctor entity.Doctor) error
	AppendHospital(ctx context.Context, hospital entity.Hospital) error

	// UpdateStoredPatient and UpdateStoredDoctor replace a user-created
	// record in place. The bool reports whether a stored record with that
	// id existed; false means the id only lives in the read-only seed data.
	UpdateStoredPatient(ctx context.Context, patient entity.Patient) (bool, error)
	UpdateStoredDoctor(ctx context.Context, doctor entity.Doctor) (bool, error)
}
