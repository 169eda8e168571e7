package entity

// Patient is a person record on the patient side of the portal. Seed
// patients carry embedded appointments, medical history and test results;
// signed-up patients start with empty slices.
type Patient struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Age            int             `json:"age"`
	Gender         string          `json:"gender"`
	Address        string          `json:"address"`
	BloodGroup     string          `json:"bloodGroup"`
	ProfileImage   string          `json:"profileImage,omitempty"`
	Appointments   []Appointment   `json:"appointments"`
	MedicalHistory []MedicalRecord `json:"medicalHistory"`
	TestResults    []TestResult    `json:"testResults"`
}

// Appointment is a scheduled visit as seen on a patient's dashboard.
type Appointment struct {
	ID          int    `json:"id"`
	PatientID   int    `json:"patientId,omitempty"`
	PatientName string `json:"patientName,omitempty"`
	DoctorID    int    `json:"doctorId,omitempty"`
	DoctorName  string `json:"doctorName,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Doctor      string `json:"doctor,omitempty"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

type MedicalRecord struct {
	ID         int    `json:"id"`
	Date       string `json:"date"`
	Diagnosis  string `json:"diagnosis"`
	Treatment  string `json:"treatment"`
	Doctor     string `json:"doctor"`
	CancerType string `json:"cancerType"`
}

type TestResult struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	TestType    string `json:"testType"`
	Value       string `json:"value"`
	NormalRange string `json:"normalRange,omitempty"`
	Size        string `json:"size,omitempty"`
	Location    string `json:"location,omitempty"`
	Status      string `json:"status"`
	CancerType  string `json:"cancerType"`
}
