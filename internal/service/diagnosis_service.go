package service

import (
	"errors"
	"fmt"
	"strings"
)

// Cancer types the scoring engine knows how to evaluate.
const (
	CancerTypeLiver  = "liver"
	CancerTypeLung   = "lung"
	CancerTypeBreast = "breast"
)

var ErrUnknownCancerType = errors.New("unknown cancer type")

// DiagnosisInput carries the raw measurements for one risk calculation.
// Biomarker1 is the type-specific primary marker (AFP for liver, CEA for
// lung, CA 15-3 for breast). Biomarker2 is the HER2 status for breast;
// AdditionalFactor is the smoking history for lung. Both are ignored for
// types they do not apply to.
type DiagnosisInput struct {
	CancerType       string
	TumorSizeCm      float64
	Biomarker1       float64
	Biomarker2       string
	AdditionalFactor string
}

// DiagnosisResult echoes the inputs that apply to the evaluated cancer
// type alongside the computed probability, level and recommendation, so
// callers can render without re-deriving which fields apply.
type DiagnosisResult struct {
	Probability    string   `json:"probability"`
	RiskLevel      string   `json:"riskLevel"`
	Recommendation string   `json:"recommendation"`
	CancerType     string   `json:"cancerType"`
	TumorSize      float64  `json:"tumorSize"`
	AFPLevel       *float64 `json:"afpLevel,omitempty"`
	CEALevel       *float64 `json:"ceaLevel,omitempty"`
	SmokingHistory *string  `json:"smokingHistory,omitempty"`
	CA153Level     *float64 `json:"ca153Level,omitempty"`
	HER2Status     *string  `json:"her2Status,omitempty"`
}

// ScoreRisk computes a cancer-risk probability from tumor size, the
// primary biomarker and an optional secondary factor. The score is the
// sum of bounded bucket contributions clamped to [5, 95]; every breakpoint
// is half-open (strictly below the upper bound). The tumor-size table is
// shared by all cancer types on purpose: it mirrors the clinical seed
// logic this engine reproduces and must not be "fixed" per type.
func ScoreRisk(in DiagnosisInput) (*DiagnosisResult, error) {
	score := tumorSizeScore(in.TumorSizeCm)

	switch in.CancerType {
	case CancerTypeLiver:
		score += afpScore(in.Biomarker1)
	case CancerTypeLung:
		score += ceaScore(in.Biomarker1)
		score += smokingScore(in.AdditionalFactor)
	case CancerTypeBreast:
		score += ca153Score(in.Biomarker1)
		score += her2Score(in.Biomarker2)
	default:
		return nil, ErrUnknownCancerType
	}

	probability := clamp(score, 5, 95)
	displayName := strings.ToUpper(in.CancerType[:1]) + in.CancerType[1:]

	result := &DiagnosisResult{
		Probability:    fmt.Sprintf("%.1f", float64(probability)),
		RiskLevel:      riskLevel(probability),
		Recommendation: recommendation(probability, displayName),
		CancerType:     displayName,
		TumorSize:      in.TumorSizeCm,
	}

	switch in.CancerType {
	case CancerTypeLiver:
		result.AFPLevel = &in.Biomarker1
	case CancerTypeLung:
		result.CEALevel = &in.Biomarker1
		result.SmokingHistory = &in.AdditionalFactor
	case CancerTypeBreast:
		result.CA153Level = &in.Biomarker1
		result.HER2Status = &in.Biomarker2
	}

	return result, nil
}

// tumorSizeScore contributes 0-40 points, identically for all cancer types.
func tumorSizeScore(sizeCm float64) int {
	switch {
	case sizeCm < 1:
		return 5
	case sizeCm < 2:
		return 15
	case sizeCm < 5:
		return 30
	case sizeCm < 10:
		return 38
	default:
		return 40
	}
}

// afpScore scores the AFP level (ng/mL) for liver cancer.
func afpScore(level float64) int {
	switch {
	case level < 10:
		return 5
	case level < 100:
		return 20
	case level < 400:
		return 32
	default:
		return 40
	}
}

// ceaScore scores the CEA level (ng/mL) for lung cancer.
func ceaScore(level float64) int {
	switch {
	case level < 3:
		return 5
	case level < 5:
		return 15
	case level < 10:
		return 28
	default:
		return 40
	}
}

// smokingScore adds the lung-cancer smoking-history bonus.
func smokingScore(history string) int {
	switch history {
	case "yes", "current":
		return 20
	case "former":
		return 10
	default:
		return 0
	}
}

// ca153Score scores the CA 15-3 level (U/mL) for breast cancer.
func ca153Score(level float64) int {
	switch {
	case level < 30:
		return 5
	case level < 50:
		return 18
	case level < 100:
		return 30
	default:
		return 40
	}
}

// her2Score adds the breast-cancer HER2 status bonus.
func her2Score(status string) int {
	switch status {
	case "positive":
		return 20
	case "negative":
		return 5
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func riskLevel(probability int) string {
	switch {
	case probability < 30:
		return "Low"
	case probability < 60:
		return "Moderate"
	default:
		return "High"
	}
}

func recommendation(probability int, cancerName string) string {
	switch {
	case probability < 30:
		return fmt.Sprintf("Low risk for %s cancer. Continue regular monitoring and follow-up in 6 months. Maintain healthy lifestyle and regular screenings.", cancerName)
	case probability < 60:
		return fmt.Sprintf("Moderate risk for %s cancer. Additional imaging studies and biopsy recommended. Schedule follow-up consultation within 1 month. Consider referral to oncology specialist.", cancerName)
	default:
		return fmt.Sprintf("High risk for %s cancer. Immediate comprehensive diagnostic workup required. Urgent referral to oncology specialist recommended. Consider advanced imaging and tissue biopsy.", cancerName)
	}
}
