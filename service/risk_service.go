package service

import (
	"fmt"

	"loan-insights/domain"
)

// RiskService clasifica la carga de deuda de un deudor contra su ingreso.
type RiskService struct{}

func NewRiskService() *RiskService {
	return &RiskService{}
}

// Texto fijo por nivel de riesgo. No son plantillas.
var riskRecommendations = map[domain.RiskLevel]string{
	domain.RiskLevelLow:      "Endeudamiento saludable, tienes buen margen financiero",
	domain.RiskLevelMedium:   "Endeudamiento moderado, monitorea tus pagos de cerca",
	domain.RiskLevelHigh:     "Endeudamiento alto, considera pagar tus deudas más rápido",
	domain.RiskLevelCritical: "Endeudamiento crítico, prioriza el pago de deudas",
}

// ClassifyLoanRatio computes the aggregate EMI-to-income ratio and maps it to
// a risk tier with its fixed advisory text.
func (s *RiskService) ClassifyLoanRatio(
	totalMonthlyEMI float64,
	monthlyIncome float64,
) (domain.RiskProfile, error) {

	if monthlyIncome <= 0 {
		return domain.RiskProfile{}, fmt.Errorf("%w: ingreso mensual inválido", domain.ErrInvalidParameter)
	}
	if totalMonthlyEMI < 0 {
		return domain.RiskProfile{}, fmt.Errorf("%w: EMI total inválido", domain.ErrInvalidParameter)
	}

	ratio := roundTo2Decimals((totalMonthlyEMI / monthlyIncome) * 100)

	var nivel domain.RiskLevel
	switch {
	case ratio <= RatioThresholdLow:
		nivel = domain.RiskLevelLow
	case ratio <= RatioThresholdMedium:
		nivel = domain.RiskLevelMedium
	case ratio <= RatioThresholdHigh:
		nivel = domain.RiskLevelHigh
	default:
		nivel = domain.RiskLevelCritical
	}

	return domain.RiskProfile{
		Ratio:          ratio,
		RiskLevel:      nivel,
		Recommendation: riskRecommendations[nivel],
	}, nil
}
