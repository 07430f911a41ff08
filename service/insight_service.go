package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap"

	"loan-insights/domain"
	"loan-insights/repository"
)

// InsightService compone los resultados del clasificador y del portafolio de
// préstamos en una lista ordenada de consejos cortos. Cada insight es
// independiente; si no hay préstamos que califiquen simplemente se omite.
type InsightService struct {
	riskService *RiskService
	cache       repository.CacheRepository
	logger      *zap.Logger
}

func NewInsightService(
	riskService *RiskService,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *InsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{
		riskService: riskService,
		cache:       cache,
		logger:      logger,
	}
}

// insightCacheKey deriva una clave estable del portafolio e ingreso.
func insightCacheKey(loans []domain.Loan, monthlyIncome float64) string {
	payload, err := json.Marshal(struct {
		Loans  []domain.Loan `json:"loans"`
		Income float64       `json:"income"`
	}{loans, monthlyIncome})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return "insights:" + hex.EncodeToString(sum[:])
}

// GenerateInsights builds the advisory list for a borrower's full loan set.
// Results are cached by input digest; identical inputs return the cached
// list.
func (s *InsightService) GenerateInsights(
	loans []domain.Loan,
	monthlyIncome float64,
) ([]string, error) {

	if monthlyIncome <= 0 {
		return nil, fmt.Errorf("%w: ingreso mensual inválido", domain.ErrInvalidParameter)
	}

	key := insightCacheKey(loans, monthlyIncome)
	if s.cache != nil && key != "" {
		if cached, ok := s.cache.Get(key); ok {
			var insights []string
			if err := json.Unmarshal([]byte(cached), &insights); err == nil {
				return insights, nil
			}
		}
	}

	activos := activeLoans(loans)
	insights := []string{}

	// Consejo del clasificador sobre la carga agregada.
	totalEMI := 0.0
	for _, loan := range activos {
		totalEMI += loan.MonthlyInstallment
	}
	perfil, err := s.riskService.ClassifyLoanRatio(totalEMI, monthlyIncome)
	if err != nil {
		return nil, err
	}
	insights = append(insights, perfil.Recommendation)

	if len(activos) > 0 {
		// Préstamo con la tasa más alta: candidato a refinanciar.
		masCaro := activos[0]
		for _, loan := range activos[1:] {
			if loan.AnnualInterestRate > masCaro.AnnualInterestRate {
				masCaro = loan
			}
		}
		if masCaro.AnnualInterestRate > 0 {
			insights = append(insights, fmt.Sprintf(
				"Tu préstamo %s tiene la tasa más alta (%.2f%% anual), considera refinanciarlo",
				masCaro.ID, masCaro.AnnualInterestRate))
		}

		// Préstamo más grande: tiempo estimado para liquidarlo al ritmo actual.
		masGrande := activos[0]
		for _, loan := range activos[1:] {
			if loan.RemainingAmount > masGrande.RemainingAmount {
				masGrande = loan
			}
		}
		if masGrande.MonthlyInstallment > 0 {
			meses := int(math.Ceil(masGrande.RemainingAmount / masGrande.MonthlyInstallment))
			insights = append(insights, fmt.Sprintf(
				"Tu préstamo más grande (%s) se liquidará en aproximadamente %d meses al ritmo actual",
				masGrande.ID, meses))
		}

		// Préstamo más pequeño: victoria rápida estilo snowball.
		masChico := activos[0]
		for _, loan := range activos[1:] {
			if loan.RemainingAmount < masChico.RemainingAmount {
				masChico = loan
			}
		}
		insights = append(insights, fmt.Sprintf(
			"Liquidar primero tu préstamo más pequeño (%s, $%.2f) te daría una victoria rápida",
			masChico.ID, masChico.RemainingAmount))
	}

	// Consolidación cuando hay más de dos préstamos activos.
	if len(activos) > 2 {
		insights = append(insights, fmt.Sprintf(
			"Tienes %d préstamos activos, consolidarlos podría simplificar tus pagos y reducir intereses",
			len(activos)))
	}

	// Capacidad libre cuando la carga agregada es baja.
	if perfil.Ratio < RatioThresholdLow {
		insights = append(insights,
			"Usas menos del 20% de tu ingreso en deudas, podrías adelantar pagos para ahorrar intereses")
	}

	if s.cache != nil && key != "" {
		if payload, err := json.Marshal(insights); err == nil {
			if err := s.cache.Set(key, string(payload)); err != nil {
				s.logger.Warn("failed to cache insights", zap.Error(err))
			}
		}
	}

	return insights, nil
}
