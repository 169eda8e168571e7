package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
	domainRepo "oncoportal/internal/domain/repository"
	"oncoportal/internal/infrastructure/store"
	"oncoportal/internal/seed"

	"github.com/sirupsen/logrus"
)

type directoryRepository struct {
	store store.Store
	log   *logrus.Logger
}

func NewDirectoryRepository(s store.Store, log *logrus.Logger) domainRepo.DirectoryRepository {
	return &directoryRepository{store: s, log: log}
}

func (r *directoryRepository) AllPatients(ctx context.Context) ([]entity.Patient, error) {
	stored, err := store.LoadAll[entity.Patient](ctx, r.store, r.log, store.CollectionNewPatients)
	if err != nil {
		return nil, err
	}
	return append(seed.Patients(), stored...), nil
}

func (r *directoryRepository) AllDoctors(ctx context.Context) ([]entity.Doctor, error) {
	stored, err := store.LoadAll[entity.Doctor](ctx, r.store, r.log, store.CollectionNewDoctors)
	if err != nil {
		return nil, err
	}
	return append(seed.Doctors(), stored...), nil
}

func (r *directoryRepository) AllHospitals(ctx context.Context) ([]entity.Hospital, error) {
	stored, err := store.LoadAll[entity.Hospital](ctx, r.store, r.log, store.CollectionHospitals)
	if err != nil {
		return nil, err
	}
	return append(seed.Hospitals(), stored...), nil
}

func (r *directoryRepository) FindPatientByID(ctx context.Context, id int) (*entity.Patient, error) {
	patients, err := r.AllPatients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, nil
}

func (r *directoryRepository) FindDoctorByID(ctx context.Context, id int) (*entity.Doctor, error) {
	doctors, err := r.AllDoctors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], nil
		}
	}
	return nil, nil
}

func (r *directoryRepository) FindByEmail(ctx context.Context, email string) (entity.Role, *entity.Patient, *entity.Doctor, error) {
	patients, err := r.AllPatients(ctx)
	if err != nil {
		return "", nil, nil, err
	}
	for i := range patients {
		if patients[i].Email == email {
			return entity.RolePatient, &patients[i], nil, nil
		}
	}

	doctors, err := r.AllDoctors(ctx)
	if err != nil {
		return "", nil, nil, err
	}
	for i := range doctors {
		if doctors[i].Email == email {
			return entity.RoleDoctor, nil, &doctors[i], nil
		}
	}

	return "", nil, nil, nil
}

func (r *directoryRepository) DoctorsForHospital(ctx context.Context, hospitalName string) ([]entity.Doctor, error) {
	doctors, err := r.AllDoctors(ctx)
	if err != nil {
		return nil, err
	}
	if hospitalName == "" || hospitalName == "all" {
		return doctors, nil
	}

	filtered := make([]entity.Doctor, 0, len(doctors))
	for _, doc := range doctors {
		if doc.HospitalOrDefault() == hospitalName {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}

func (r *directoryRepository) PatientsForDoctor(ctx context.Context, doctorID int) ([]entity.Patient, error) {
	doctor, err := r.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return []entity.Patient{}, nil
	}

	assigned := make(map[int]bool, len(doctor.Patients))
	for _, id := range doctor.Patients {
		assigned[id] = true
	}

	patients, err := r.AllPatients(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Patient, 0, len(doctor.Patients))
	for _, p := range patients {
		if assigned[p.ID] {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *directoryRepository) StoredCounts(ctx context.Context) (int, int, error) {
	storedPatients, err := store.LoadAll[entity.Patient](ctx, r.store, r.log, store.CollectionNewPatients)
	if err != nil {
		return 0, 0, err
	}
	storedDoctors, err := store.LoadAll[entity.Doctor](ctx, r.store, r.log, store.CollectionNewDoctors)
	if err != nil {
		return 0, 0, err
	}
	return len(storedPatients), len(storedDoctors), nil
}

func (r *directoryRepository) AppendPatient(ctx context.Context, patient entity.Patient) error {
	stored, err := store.LoadAll[entity.Patient](ctx, r.store, r.log, store.CollectionNewPatients)
	if err != nil {
		return err
	}
	return store.SaveAll(ctx, r.store, store.CollectionNewPatients, append(stored, patient))
}

func (r *directoryRepository) AppendDoctor(ctx context.Context, doctor entity.Doctor) error {
	stored, err := store.LoadAll[entity.Doctor](ctx, r.store, r.log, store.CollectionNewDoctors)
	if err != nil {
		return err
	}
	return store.SaveAll(ctx, r.store, store.CollectionNewDoctors, append(stored, doctor))
}

func (r *directoryRepository) AppendHospital(ctx context.Context, hospital entity.Hospital) error {
	stored, err := store.LoadAll[entity.Hospital](ctx, r.store, r.log, store.CollectionHospitals)
	if err != nil {
		return err
	}
	return store.SaveAll(ctx, r.store, store.CollectionHospitals, append(stored, hospital))
}

func (r *directoryRepository) UpdateStoredPatient(ctx context.Context, patient entity.Patient) (bool, error) {
	stored, err := store.LoadAll[entity.Patient](ctx, r.store, r.log, store.CollectionNewPatients)
	if err != nil {
		return false, err
	}
	for i := range stored {
		if stored[i].ID == patient.ID {
			stored[i] = patient
			return true, store.SaveAll(ctx, r.store, store.CollectionNewPatients, stored)
		}
	}
	return false, nil
}

func (r *directoryRepository) UpdateStoredDoctor(ctx context.Context, doctor entity.Doctor) (bool, error) {
	stored, err := store.LoadAll[entity.Doctor](ctx, r.store, r.log, store.CollectionNewDoctors)
	if err != nil {
		return false, err
	}
	for i := range stored {
		if stored[i].ID == doctor.ID {
			stored[i] = doctor
			return true, store.SaveAll(ctx, r.store, store.CollectionNewDoctors, stored)
		}
	}
	return false, nil
}
