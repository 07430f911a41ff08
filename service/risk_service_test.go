package service

import (
	"errors"
	"testing"

	"loan-insights/domain"
)

func TestClassifyLoanRatio_Boundaries(t *testing.T) {

	service := NewRiskService()

	cases := []struct {
		name     string
		totalEMI float64
		income   float64
		ratio    float64
		level    domain.RiskLevel
	}{
		{"exactly 20 is low", 2000, 10000, 20.00, domain.RiskLevelLow},
		{"just above 20 is medium", 2001, 10000, 20.01, domain.RiskLevelMedium},
		{"exactly 35 is medium", 3500, 10000, 35.00, domain.RiskLevelMedium},
		{"exactly 50 is high", 5000, 10000, 50.00, domain.RiskLevelHigh},
		{"just above 50 is critical", 5001, 10000, 50.01, domain.RiskLevelCritical},
		{"zero emi is low", 0, 10000, 0.00, domain.RiskLevelLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile, err := service.ClassifyLoanRatio(tc.totalEMI, tc.income)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if profile.Ratio != tc.ratio {
				t.Errorf("expected ratio %.2f, got %.2f", tc.ratio, profile.Ratio)
			}
			if profile.RiskLevel != tc.level {
				t.Errorf("expected level %s, got %s", tc.level, profile.RiskLevel)
			}
			if profile.Recommendation == "" {
				t.Errorf("expected a recommendation for level %s", tc.level)
			}
		})
	}
}

func TestClassifyLoanRatio_FixedTextPerTier(t *testing.T) {

	service := NewRiskService()

	low, _ := service.ClassifyLoanRatio(1000, 10000)
	critical, _ := service.ClassifyLoanRatio(9000, 10000)

	if low.Recommendation == critical.Recommendation {
		t.Errorf("expected distinct advisory text per tier")
	}
}

func TestClassifyLoanRatio_InvalidInput(t *testing.T) {

	service := NewRiskService()

	if _, err := service.ClassifyLoanRatio(1000, 0); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero income, got %v", err)
	}
	if _, err := service.ClassifyLoanRatio(1000, -5000); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for negative income, got %v", err)
	}
	if _, err := service.ClassifyLoanRatio(-1, 10000); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for negative EMI, got %v", err)
	}
}
