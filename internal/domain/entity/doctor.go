package entity

// DefaultHospital is assumed for doctors who did not pick a hospital at
// signup and when filtering doctors with an empty hospital field.
const DefaultHospital = "Independent / Private Clinic"

// Doctor is a person record on the clinician side of the portal. The
// Patients id list is an assignment list populated only at seed time;
// signed-up doctors start with an empty list.
type Doctor struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Experience     string `json:"experience"`
	Qualifications string `json:"qualifications"`
	Hospital       string `json:"hospital"`
	ProfileImage   string `json:"profileImage,omitempty"`
	Patients       []int  `json:"patients"`
}

// HospitalOrDefault returns the doctor's hospital, falling back to the
// independent-clinic bucket when none is set.
func (d *Doctor) HospitalOrDefault() string {
	if d.Hospital == "" {
		return DefaultHospital
	}
	return d.Hospital
}
