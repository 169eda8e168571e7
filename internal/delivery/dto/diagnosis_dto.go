package dto

// DiagnosisRequest feeds the risk-scoring engine. Biomarker1 is the
// type-specific primary marker (AFP, CEA or CA 15-3); Biomarker2 is the
// HER2 status for breast cancer; AdditionalFactor is the smoking history
// for lung cancer.
type DiagnosisRequest struct {
	CancerType       string  `json:"cancerType" validate:"required,oneof=liver lung breast"`
	TumorSize        float64 `json:"tumorSize" validate:"gte=0"`
	Biomarker1       float64 `json:"biomarker1" validate:"gte=0"`
	Biomarker2       string  `json:"biomarker2" validate:"omitempty,oneof=positive negative unknown"`
	AdditionalFactor string  `json:"additionalFactor" validate:"omitempty,oneof=yes current former never no"`
}
