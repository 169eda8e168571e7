package usecase

import (
	"context"
	"errors"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
	"oncoportal/internal/domain/repository"
	"oncoportal/internal/seed"

	"github.com/sirupsen/logrus"
)

var ErrHospitalAlreadyExists = errors.New("a hospital with that name already exists")

type DirectoryUsecase interface {
	Hospitals(ctx context.Context) ([]entity.Hospital, error)
	DoctorsByHospital(ctx context.Context, hospitalName string) ([]entity.Doctor, error)
	AllPatients(ctx context.Context) ([]entity.Patient, error)
	PatientsForDoctor(ctx context.Context, doctorID int) ([]entity.Patient, error)
	AddHospital(ctx context.Context, req *dto.AddHospitalRequest) (*entity.Hospital, error)

	AllAppointments(ctx context.Context) ([]entity.Appointment, error)
	PatientAppointments(ctx context.Context, patientID int) ([]entity.Appointment, error)
	PatientMedicalHistory(ctx context.Context, patientID int) ([]entity.MedicalRecord, error)
	PatientTestResults(ctx context.Context, patientID int) ([]entity.TestResult, error)
}

type directoryUsecase struct {
	log           *logrus.Logger
	directoryRepo repository.DirectoryRepository
}

func NewDirectoryUsecase(log *logrus.Logger, directoryRepo repository.DirectoryRepository) DirectoryUsecase {
	return &directoryUsecase{log: log, directoryRepo: directoryRepo}
}

func (u *directoryUsecase) Hospitals(ctx context.Context) ([]entity.Hospital, error) {
	return u.directoryRepo.AllHospitals(ctx)
}

func (u *directoryUsecase) DoctorsByHospital(ctx context.Context, hospitalName string) ([]entity.Doctor, error) {
	return u.directoryRepo.DoctorsForHospital(ctx, hospitalName)
}

func (u *directoryUsecase) AllPatients(ctx context.Context) ([]entity.Patient, error) {
	return u.directoryRepo.AllPatients(ctx)
}

func (u *directoryUsecase) PatientsForDoctor(ctx context.Context, doctorID int) ([]entity.Patient, error) {
	return u.directoryRepo.PatientsForDoctor(ctx, doctorID)
}

func (u *directoryUsecase) AddHospital(ctx context.Context, req *dto.AddHospitalRequest) (*entity.Hospital, error) {
	hospitals, err := u.directoryRepo.AllHospitals(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range hospitals {
		if h.Name == req.Name {
			return nil, ErrHospitalAlreadyExists
		}
	}

	hospital := entity.Hospital{
		Name:          req.Name,
		City:          req.City,
		BranchCode:    req.BranchCode,
		TotalPatients: req.TotalPatients,
		TotalDoctors:  req.TotalDoctors,
	}
	if err := u.directoryRepo.AppendHospital(ctx, hospital); err != nil {
		u.log.Warnf("Failed to store hospital: %+v", err)
		return nil, err
	}
	return &hospital, nil
}

func (u *directoryUsecase) AllAppointments(_ context.Context) ([]entity.Appointment, error) {
	return seed.Appointments(), nil
}

func (u *directoryUsecase) PatientAppointments(ctx context.Context, patientID int) ([]entity.Appointment, error) {
	patient, err := u.directoryRepo.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return []entity.Appointment{}, nil
	}
	return patient.Appointments, nil
}

func (u *directoryUsecase) PatientMedicalHistory(ctx context.Context, patientID int) ([]entity.MedicalRecord, error) {
	patient, err := u.directoryRepo.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return []entity.MedicalRecord{}, nil
	}
	return patient.MedicalHistory, nil
}

func (u *directoryUsecase) PatientTestResults(ctx context.Context, patientID int) ([]entity.TestResult, error) {
	patient, err := u.directoryRepo.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return []entity.TestResult{}, nil
	}
	return patient.TestResults, nil
}
