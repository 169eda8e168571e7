// Package seed holds the built-in, read-only directory data present
// before any signups. Signed-up records are appended to the record store
// and merged with these lists at read time.
package seed

import "oncoportal/internal/domain/entity"

var patients = []entity.Patient{
	{
		ID:         1,
		Name:       "Ahmed Ali Khan",
		Email:      "patient@test.com",
		Phone:      "+92 300 1234567",
		Age:        45,
		Gender:     "Male",
		Address:    "Lahore, Punjab",
		BloodGroup: "O+",
		Appointments: []entity.Appointment{
			{ID: 1, Date: "2024-12-15", Time: "10:00 AM", Doctor: "Dr. Fatima Sheikh", Status: "upcoming", Reason: "Follow-up consultation"},
			{ID: 2, Date: "2024-12-01", Time: "02:30 PM", Doctor: "Dr. Fatima Sheikh", Status: "completed", Reason: "Initial diagnosis"},
		},
		MedicalHistory: []entity.MedicalRecord{
			{ID: 1, Date: "2024-11-20", Diagnosis: "Hepatitis B", Treatment: "Antiviral medication", Doctor: "Dr. Fatima Sheikh", CancerType: "liver"},
			{ID: 2, Date: "2024-10-15", Diagnosis: "Elevated liver enzymes", Treatment: "Diet modification", Doctor: "Dr. Fatima Sheikh", CancerType: "liver"},
		},
		TestResults: []entity.TestResult{
			{ID: 1, Date: "2024-12-01", TestType: "AFP Level", Value: "250 ng/mL", NormalRange: "< 10 ng/mL", Status: "abnormal", CancerType: "liver"},
			{ID: 2, Date: "2024-12-01", TestType: "CT Scan", Value: "Tumor detected", Size: "3.5 cm", Location: "Right lobe", Status: "abnormal", CancerType: "liver"},
		},
	},
	{
		ID:         2,
		Name:       "Sana Malik",
		Email:      "sana.malik@test.com",
		Phone:      "+92 321 9876543",
		Age:        52,
		Gender:     "Female",
		Address:    "Karachi, Sindh",
		BloodGroup: "A+",
		Appointments: []entity.Appointment{
			{ID: 3, Date: "2024-12-20", Time: "11:00 AM", Doctor: "Dr. Fatima Sheikh", Status: "upcoming", Reason: "Post-surgery checkup"},
		},
		MedicalHistory: []entity.MedicalRecord{
			{ID: 3, Date: "2024-11-10", Diagnosis: "Liver cancer - Stage II", Treatment: "Surgical resection", Doctor: "Dr. Fatima Sheikh", CancerType: "liver"},
		},
		TestResults: []entity.TestResult{
			{ID: 3, Date: "2024-12-10", TestType: "AFP Level", Value: "45 ng/mL", NormalRange: "< 10 ng/mL", Status: "abnormal", CancerType: "liver"},
		},
	},
	{
		ID:         3,
		Name:       "Muhammad Hassan",
		Email:      "hassan@test.com",
		Phone:      "+92 333 4567890",
		Age:        38,
		Gender:     "Male",
		Address:    "Islamabad, Capital Territory",
		BloodGroup: "B+",
		Appointments: []entity.Appointment{
			{ID: 4, Date: "2024-12-18", Time: "09:00 AM", Doctor: "Dr. Fatima Sheikh", Status: "upcoming", Reason: "Routine screening"},
		},
		MedicalHistory: []entity.MedicalRecord{
			{ID: 4, Date: "2024-09-05", Diagnosis: "Cirrhosis", Treatment: "Medication and lifestyle changes", Doctor: "Dr. Fatima Sheikh", CancerType: "liver"},
		},
		TestResults: []entity.TestResult{
			{ID: 4, Date: "2024-12-05", TestType: "AFP Level", Value: "8 ng/mL", NormalRange: "< 10 ng/mL", Status: "normal", CancerType: "liver"},
		},
	},
	{
		ID:         4,
		Name:       "Ayesha Raza",
		Email:      "ayesha.raza@test.com",
		Phone:      "+92 334 5678901",
		Age:        48,
		Gender:     "Female",
		Address:    "Lahore, Punjab",
		BloodGroup: "B+",
		Appointments: []entity.Appointment{
			{ID: 5, Date: "2024-12-22", Time: "02:00 PM", Doctor: "Dr. Usman Ahmed", Status: "upcoming", Reason: "Breast cancer screening follow-up"},
		},
		MedicalHistory: []entity.MedicalRecord{
			{ID: 5, Date: "2024-11-15", Diagnosis: "Breast cancer - Stage I", Treatment: "Lumpectomy and radiation", Doctor: "Dr. Usman Ahmed", CancerType: "breast"},
		},
		TestResults: []entity.TestResult{
			{ID: 5, Date: "2024-12-12", TestType: "CA 15-3 Level", Value: "52 U/mL", NormalRange: "< 30 U/mL", Status: "abnormal", CancerType: "breast"},
			{ID: 6, Date: "2024-12-12", TestType: "HER2 Status", Value: "Positive", NormalRange: "Negative", Status: "abnormal", CancerType: "breast"},
		},
	},
	{
		ID:         5,
		Name:       "Bilal Qureshi",
		Email:      "bilal.qureshi@test.com",
		Phone:      "+92 345 6789012",
		Age:        55,
		Gender:     "Male",
		Address:    "Karachi, Sindh",
		BloodGroup: "A+",
		Appointments: []entity.Appointment{
			{ID: 6, Date: "2024-12-19", Time: "10:30 AM", Doctor: "Dr. Usman Ahmed", Status: "upcoming", Reason: "Lung cancer monitoring"},
		},
		MedicalHistory: []entity.MedicalRecord{
			{ID: 6, Date: "2024-10-20", Diagnosis: "Lung cancer - Stage III", Treatment: "Chemotherapy and targeted therapy", Doctor: "Dr. Usman Ahmed", CancerType: "lung"},
		},
		TestResults: []entity.TestResult{
			{ID: 7, Date: "2024-12-08", TestType: "CEA Level", Value: "8.5 ng/mL", NormalRange: "< 3 ng/mL", Status: "abnormal", CancerType: "lung"},
			{ID: 8, Date: "2024-12-08", TestType: "CT Scan - Chest", Value: "Tumor detected", Size: "4.2 cm", Location: "Right upper lobe", Status: "abnormal", CancerType: "lung"},
		},
	},
}

var doctors = []entity.Doctor{
	{
		ID:             1,
		Name:           "Dr. Fatima Sheikh",
		Email:          "doctor@test.com",
		Specialization: "Hepatology & Liver Cancer",
		Phone:          "+92 300 1112233",
		Experience:     "15 years",
		Qualifications: "MBBS, FCPS (Gastroenterology)",
		Hospital:       "Aga Khan University Hospital",
		Patients:       []int{1, 2, 3},
	},
	{
		ID:             2,
		Name:           "Dr. Usman Ahmed",
		Email:          "usman.ahmed@test.com",
		Specialization: "Oncology - Lung & Breast Cancer",
		Phone:          "+92 321 2223344",
		Experience:     "12 years",
		Qualifications: "MBBS, FCPS (Oncology)",
		Hospital:       "Shaukat Khanum Memorial Cancer Hospital",
		Patients:       []int{4, 5},
	},
}

var hospitals = []entity.Hospital{
	{Name: "Aga Khan University Hospital", City: "Karachi", BranchCode: "KHI01", TotalPatients: 120, TotalDoctors: 45},
	{Name: "Shaukat Khanum Memorial Cancer Hospital", City: "Lahore", BranchCode: "LHE02", TotalPatients: 98, TotalDoctors: 38},
	{Name: "Liaquat National Hospital", City: "Karachi", BranchCode: "KHI03", TotalPatients: 75, TotalDoctors: 30},
	{Name: "Dow University Hospital", City: "Karachi", BranchCode: "KHI04", TotalPatients: 60, TotalDoctors: 22},
	{Name: "Punjab Institute of Cardiology", City: "Lahore", BranchCode: "LHE05", TotalPatients: 82, TotalDoctors: 28},
	{Name: "Independent / Private Clinic", City: "Islamabad", BranchCode: "ISB01", TotalPatients: 25, TotalDoctors: 10},
}

var appointments = []entity.Appointment{
	{ID: 1, PatientID: 1, PatientName: "Ahmed Ali Khan", DoctorID: 1, DoctorName: "Dr. Fatima Sheikh", Date: "2024-12-15", Time: "10:00 AM", Status: "upcoming", Reason: "Follow-up consultation - Liver"},
	{ID: 2, PatientID: 2, PatientName: "Sana Malik", DoctorID: 1, DoctorName: "Dr. Fatima Sheikh", Date: "2024-12-20", Time: "11:00 AM", Status: "upcoming", Reason: "Post-surgery checkup - Liver"},
	{ID: 3, PatientID: 3, PatientName: "Muhammad Hassan", DoctorID: 1, DoctorName: "Dr. Fatima Sheikh", Date: "2024-12-18", Time: "09:00 AM", Status: "upcoming", Reason: "Routine screening - Liver"},
	{ID: 4, PatientID: 4, PatientName: "Ayesha Raza", DoctorID: 2, DoctorName: "Dr. Usman Ahmed", Date: "2024-12-22", Time: "02:00 PM", Status: "upcoming", Reason: "Breast cancer screening follow-up"},
	{ID: 5, PatientID: 5, PatientName: "Bilal Qureshi", DoctorID: 2, DoctorName: "Dr. Usman Ahmed", Date: "2024-12-19", Time: "10:30 AM", Status: "upcoming", Reason: "Lung cancer monitoring"},
}

// Patients returns the seed patient list. Callers must treat the records
// as read-only.
func Patients() []entity.Patient {
	out := make([]entity.Patient, len(patients))
	copy(out, patients)
	return out
}

func Doctors() []entity.Doctor {
	out := make([]entity.Doctor, len(doctors))
	copy(out, doctors)
	return out
}

func Hospitals() []entity.Hospital {
	out := make([]entity.Hospital, len(hospitals))
	copy(out, hospitals)
	return out
}

func Appointments() []entity.Appointment {
	out := make([]entity.Appointment, len(appointments))
	copy(out, appointments)
	return out
}
