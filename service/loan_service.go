package service

import (
	"fmt"
	"math"
	"time"

	"loan-insights/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales (half away from zero).
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// LoanService calcula cuotas fijas (EMI) y cronogramas de amortización.
// No tiene estado; es seguro compartirlo entre goroutines.
type LoanService struct{}

// NewLoanService creates a new LoanService.
func NewLoanService() *LoanService {
	return &LoanService{}
}

func validateLoanTerms(principal, annualRate float64, tenureMonths int) error {
	if principal <= 0 {
		return fmt.Errorf("%w: monto inválido", domain.ErrInvalidParameter)
	}
	if principal > MaxLoanAmount {
		return fmt.Errorf("%w: monto excede el máximo permitido de $%.2f", domain.ErrInvalidParameter, MaxLoanAmount)
	}
	if annualRate < 0 {
		return fmt.Errorf("%w: tasa inválida", domain.ErrInvalidParameter)
	}
	if annualRate > MaxInterestRate {
		return fmt.Errorf("%w: tasa excede el máximo permitido de %.2f%%", domain.ErrInvalidParameter, MaxInterestRate)
	}
	if tenureMonths <= 0 {
		return fmt.Errorf("%w: plazo inválido", domain.ErrInvalidParameter)
	}
	if tenureMonths > MaxTenureMonths {
		return fmt.Errorf("%w: plazo excede el máximo permitido de %d meses", domain.ErrInvalidParameter, MaxTenureMonths)
	}
	return nil
}

// monthlyPayment devuelve la cuota fija sin redondear. El redondeo se aplica
// solo a los valores reportados; el cronograma usa la cuota exacta para no
// acumular error de redondeo a lo largo de los meses.
func monthlyPayment(principal, annualRate float64, tenureMonths int) float64 {
	if annualRate == 0 {
		return principal / float64(tenureMonths)
	}
	tasaMensual := (annualRate / 100) / 12
	n := float64(tenureMonths)
	return principal * (tasaMensual / (1 - math.Pow(1+tasaMensual, -n)))
}

// CalculateEMI calculates the fixed monthly installment, total interest and
// total payable for the given loan terms.
func (s *LoanService) CalculateEMI(input domain.LoanInput) (domain.LoanResult, error) {
	if err := validateLoanTerms(input.Principal, input.AnnualInterestRate, input.TenureMonths); err != nil {
		return domain.LoanResult{}, err
	}

	// El total reportado se deriva de la cuota ya redondeada: es lo que el
	// deudor paga de verdad mes a mes.
	cuota := roundTo2Decimals(monthlyPayment(input.Principal, input.AnnualInterestRate, input.TenureMonths))
	total := cuota * float64(input.TenureMonths)
	intereses := total - input.Principal

	return domain.LoanResult{
		MonthlyEMI:    cuota,
		TotalInterest: roundTo2Decimals(intereses),
		TotalPayable:  roundTo2Decimals(total),
	}, nil
}

// GenerateSchedule produces the month-by-month amortization breakdown. If
// startDate is the zero value, the schedule starts now. The final month pays
// the remaining balance exactly, so the schedule always zeroes out despite
// rounding drift.
func (s *LoanService) GenerateSchedule(
	input domain.LoanInput,
	startDate time.Time,
) ([]domain.RepaymentScheduleEntry, error) {

	if err := validateLoanTerms(input.Principal, input.AnnualInterestRate, input.TenureMonths); err != nil {
		return nil, err
	}
	if startDate.IsZero() {
		startDate = time.Now()
	}

	cuota := monthlyPayment(input.Principal, input.AnnualInterestRate, input.TenureMonths)
	tasaMensual := (input.AnnualInterestRate / 100) / 12
	saldo := input.Principal

	schedule := make([]domain.RepaymentScheduleEntry, 0, input.TenureMonths)
	for mes := 1; mes <= input.TenureMonths; mes++ {
		interes := roundTo2Decimals(saldo * tasaMensual)

		var capital float64
		if mes == input.TenureMonths {
			// Último mes: el capital es el saldo exacto para cerrar en cero.
			capital = roundTo2Decimals(saldo)
		} else {
			capital = roundTo2Decimals(cuota - interes)
		}

		saldo = roundTo2Decimals(saldo - capital)
		if saldo < 0 {
			saldo = 0
		}

		schedule = append(schedule, domain.RepaymentScheduleEntry{
			Month:            mes,
			PrincipalPayment: capital,
			InterestPayment:  interes,
			RemainingBalance: saldo,
			DueDate:          startDate.AddDate(0, mes, 0),
			Paid:             false,
		})
	}

	return schedule, nil
}
