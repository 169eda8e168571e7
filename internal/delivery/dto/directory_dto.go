package dto

type AddHospitalRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	City          string `json:"city" validate:"required"`
	BranchCode    string `json:"branchCode" validate:"required"`
	TotalPatients int    `json:"totalPatients" validate:"gte=0"`
	TotalDoctors  int    `json:"totalDoctors" validate:"gte=0"`
}

type ChatbotRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatbotResponse struct {
	Reply string `json:"reply"`
}
