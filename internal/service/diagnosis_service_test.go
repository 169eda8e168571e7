package service

import (
	"strings"
	"testing"
)

func TestScoreRiskLiver(t *testing.T) {
	// tumor 3.5cm -> 30, AFP 250 -> 32, total 62 -> High
	result, err := ScoreRisk(DiagnosisInput{
		CancerType:  CancerTypeLiver,
		TumorSizeCm: 3.5,
		Biomarker1:  250,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Probability != "62.0" {
		t.Errorf("expected probability 62.0, got %s", result.Probability)
	}
	if result.RiskLevel != "High" {
		t.Errorf("expected risk level High, got %s", result.RiskLevel)
	}
	if result.CancerType != "Liver" {
		t.Errorf("expected cancer type Liver, got %s", result.CancerType)
	}
	if result.AFPLevel == nil || *result.AFPLevel != 250 {
		t.Errorf("expected afpLevel 250 to be echoed, got %v", result.AFPLevel)
	}
	if result.CEALevel != nil || result.CA153Level != nil {
		t.Error("liver result must not carry lung or breast fields")
	}
	if !strings.Contains(result.Recommendation, "High risk for Liver cancer") {
		t.Errorf("unexpected recommendation: %s", result.Recommendation)
	}
}

func TestScoreRiskLung(t *testing.T) {
	// tumor 0.5cm -> 5, CEA 2 -> 5, current smoker -> 20, total 30 -> Moderate
	result, err := ScoreRisk(DiagnosisInput{
		CancerType:       CancerTypeLung,
		TumorSizeCm:      0.5,
		Biomarker1:       2,
		AdditionalFactor: "current",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Probability != "30.0" {
		t.Errorf("expected probability 30.0, got %s", result.Probability)
	}
	if result.RiskLevel != "Moderate" {
		t.Errorf("expected risk level Moderate, got %s", result.RiskLevel)
	}
	if result.SmokingHistory == nil || *result.SmokingHistory != "current" {
		t.Errorf("expected smokingHistory current to be echoed, got %v", result.SmokingHistory)
	}
}

func TestScoreRiskBreastClampsHigh(t *testing.T) {
	// tumor 11cm -> 40, CA 15-3 120 -> 40, HER2 positive -> 20, raw 100 clamps to 95
	result, err := ScoreRisk(DiagnosisInput{
		CancerType:  CancerTypeBreast,
		TumorSizeCm: 11,
		Biomarker1:  120,
		Biomarker2:  "positive",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Probability != "95.0" {
		t.Errorf("expected probability clamped to 95.0, got %s", result.Probability)
	}
	if result.RiskLevel != "High" {
		t.Errorf("expected risk level High, got %s", result.RiskLevel)
	}
	if result.HER2Status == nil || *result.HER2Status != "positive" {
		t.Errorf("expected her2Status positive to be echoed, got %v", result.HER2Status)
	}
}

func TestScoreRiskLowFloor(t *testing.T) {
	// Smallest possible inputs still score 10; the floor only engages if a
	// future bucket change drops below it.
	result, err := ScoreRisk(DiagnosisInput{
		CancerType:  CancerTypeLiver,
		TumorSizeCm: 0.4,
		Biomarker1:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Probability != "10.0" {
		t.Errorf("expected probability 10.0, got %s", result.Probability)
	}
	if result.RiskLevel != "Low" {
		t.Errorf("expected risk level Low, got %s", result.RiskLevel)
	}
}

func TestScoreRiskUnknownType(t *testing.T) {
	_, err := ScoreRisk(DiagnosisInput{CancerType: "pancreatic", TumorSizeCm: 2})
	if err != ErrUnknownCancerType {
		t.Fatalf("expected ErrUnknownCancerType, got %v", err)
	}
}

func TestTumorSizeScoreMonotonic(t *testing.T) {
	sizes := []float64{0.5, 1.5, 3, 7, 12}
	prev := -1
	for _, size := range sizes {
		score := tumorSizeScore(size)
		if score <= prev {
			t.Errorf("tumor size %v scored %d, not above previous %d", size, score, prev)
		}
		prev = score
	}
}

func TestScoreRiskBucketBoundaries(t *testing.T) {
	// Breakpoints are half-open: the boundary value lands in the upper bucket.
	tests := []struct {
		name string
		in   DiagnosisInput
		want string
	}{
		{"afp at 400", DiagnosisInput{CancerType: CancerTypeLiver, TumorSizeCm: 0.5, Biomarker1: 400}, "45.0"},
		{"afp just below 400", DiagnosisInput{CancerType: CancerTypeLiver, TumorSizeCm: 0.5, Biomarker1: 399.9}, "37.0"},
		{"cea at 10", DiagnosisInput{CancerType: CancerTypeLung, TumorSizeCm: 0.5, Biomarker1: 10, AdditionalFactor: "never"}, "45.0"},
		{"ca153 at 30", DiagnosisInput{CancerType: CancerTypeBreast, TumorSizeCm: 0.5, Biomarker1: 30, Biomarker2: "unknown"}, "23.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ScoreRisk(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Probability != tc.want {
				t.Errorf("expected probability %s, got %s", tc.want, result.Probability)
			}
		})
	}
}

func TestSmokingScoreVariants(t *testing.T) {
	if smokingScore("yes") != smokingScore("current") {
		t.Error("yes and current must score the same")
	}
	if smokingScore("former") != 10 {
		t.Errorf("former should score 10, got %d", smokingScore("former"))
	}
	if smokingScore("never") != 0 || smokingScore("no") != 0 {
		t.Error("never and no should score 0")
	}
}
