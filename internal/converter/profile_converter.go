package converter

import (
	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/domain/entity"
)

// PatientToProfileResponse merges the side-stored profile image into the
// patient record; the stored image wins over any image on the record.
func PatientToProfileResponse(p *entity.Patient, storedImage string) *dto.PatientProfileResponse {
	resp := &dto.PatientProfileResponse{Patient: *p, Role: entity.RolePatient}
	if storedImage != "" {
		resp.ProfileImage = storedImage
	}
	return resp
}

func DoctorToProfileResponse(d *entity.Doctor, storedImage string) *dto.DoctorProfileResponse {
	resp := &dto.DoctorProfileResponse{Doctor: *d, Role: entity.RoleDoctor}
	if storedImage != "" {
		resp.ProfileImage = storedImage
	}
	return resp
}
