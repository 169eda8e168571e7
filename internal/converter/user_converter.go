package converter

import (
	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
)

func PatientToSessionUser(p *entity.Patient) dto.SessionUser {
	return dto.SessionUser{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Role:  string(entity.RolePatient),
	}
}

func DoctorToSessionUser(d *entity.Doctor) dto.SessionUser {
	return dto.SessionUser{
		ID:    d.ID,
		Name:  d.Name,
		Email: d.Email,
		Role:  string(entity.RoleDoctor),
	}
}
