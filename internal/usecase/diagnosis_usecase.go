package usecase

import (
	"context"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/service"
)

type DiagnosisUsecase interface {
	Calculate(ctx context.Context, req *dto.DiagnosisRequest) (*service.DiagnosisResult, error)
}

type diagnosisUsecase struct{}

func NewDiagnosisUsecase() DiagnosisUsecase {
	return &diagnosisUsecase{}
}

func (u *diagnosisUsecase) Calculate(_ context.Context, req *dto.DiagnosisRequest) (*service.DiagnosisResult, error) {
	return service.ScoreRisk(service.DiagnosisInput{
		CancerType:       req.CancerType,
		TumorSizeCm:      req.TumorSize,
		Biomarker1:       req.Biomarker1,
		Biomarker2:       req.Biomarker2,
		AdditionalFactor: req.AdditionalFactor,
	})
}
