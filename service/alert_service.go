package service

import (
	"fmt"
	"time"

	"loan-insights/domain"
)

// AlertService genera alertas por préstamo: vencimiento próximo, mora y
// cuota alta respecto al ingreso. Las reglas son independientes entre sí.
type AlertService struct {
	now func() time.Time // inyectable en tests
}

func NewAlertService() *AlertService {
	return &AlertService{now: time.Now}
}

// daysBetween cuenta días calendario entre dos fechas, ignorando la hora.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// GenerateAlerts evaluates every alert rule against the loan and returns the
// alerts that fired. Rules are not mutually exclusive. A non-positive income
// skips the EMI-ratio rule; it never produces an error.
func (s *AlertService) GenerateAlerts(loan domain.Loan, monthlyIncome float64) []domain.Alert {
	today := s.now()
	alerts := []domain.Alert{}

	dias := daysBetween(today, loan.NextDueDate)

	// Vencimiento próximo: solo préstamos activos, dentro de la ventana.
	if loan.Status == domain.LoanStatusActive && dias >= 0 && dias <= DueSoonWindowDays {
		alerts = append(alerts, domain.Alert{
			Type:           domain.AlertTypeDueSoon,
			Message:        fmt.Sprintf("El pago de tu préstamo vence en %d días", dias),
			Severity:       domain.AlertSeverityMedium,
			LoanID:         loan.ID,
			ActionRequired: true,
		})
	}

	// Mora: cualquier préstamo no cerrado con fecha de pago pasada.
	if loan.Status != domain.LoanStatusClosed && dias < 0 {
		alerts = append(alerts, domain.Alert{
			Type:           domain.AlertTypeOverdue,
			Message:        fmt.Sprintf("El pago de tu préstamo está vencido hace %d días", -dias),
			Severity:       domain.AlertSeverityHigh,
			LoanID:         loan.ID,
			ActionRequired: true,
		})
	}

	// Cuota alta respecto al ingreso: se evalúa solo la cuota de este
	// préstamo, no el agregado del deudor.
	if monthlyIncome > 0 {
		ratio := (loan.MonthlyInstallment / monthlyIncome) * 100
		switch {
		case ratio > AlertRatioHigh:
			alerts = append(alerts, domain.Alert{
				Type:           domain.AlertTypeHighEMIRatio,
				Message:        fmt.Sprintf("La cuota de este préstamo usa %.2f%% de tu ingreso mensual", roundTo2Decimals(ratio)),
				Severity:       domain.AlertSeverityHigh,
				LoanID:         loan.ID,
				ActionRequired: false,
			})
		case ratio > AlertRatioMedium:
			alerts = append(alerts, domain.Alert{
				Type:           domain.AlertTypeHighEMIRatio,
				Message:        fmt.Sprintf("La cuota de este préstamo usa %.2f%% de tu ingreso mensual", roundTo2Decimals(ratio)),
				Severity:       domain.AlertSeverityMedium,
				LoanID:         loan.ID,
				ActionRequired: false,
			})
		}
	}

	return alerts
}
