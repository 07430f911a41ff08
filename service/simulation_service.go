package service

import (
	"fmt"
	"time"

	"loan-insights/domain"
)

// SimulationService responde preguntas what-if sobre un préstamo: subir la
// cuota, abonar un monto extraordinario o refinanciar. Cada escenario se
// compara contra la línea base del préstamo (capital, tasa y plazo
// originales).
type SimulationService struct {
	loanService *LoanService
}

func NewSimulationService(loanService *LoanService) *SimulationService {
	return &SimulationService{loanService: loanService}
}

func (s *SimulationService) baseline(loan domain.Loan) (domain.LoanResult, error) {
	return s.loanService.CalculateEMI(domain.LoanInput{
		Principal:          loan.Principal,
		AnnualInterestRate: loan.AnnualInterestRate,
		TenureMonths:       loan.TenureMonths,
	})
}

func scheduleStart(loan domain.Loan) time.Time {
	if !loan.StartDate.IsZero() {
		return loan.StartDate
	}
	return time.Now()
}

// SimulateIncreasedEMI re-amortizes the loan from its original principal
// using the new monthly payment. The loop is capped at MaxSimulationMonths;
// if the balance never reaches zero the result carries Converged=false and a
// truncated schedule.
func (s *SimulationService) SimulateIncreasedEMI(
	loan domain.Loan,
	newMonthlyPayment float64,
) (domain.SimulationResult, error) {

	if newMonthlyPayment <= 0 {
		return domain.SimulationResult{}, fmt.Errorf("%w: cuota propuesta inválida", domain.ErrInvalidParameter)
	}

	base, err := s.baseline(loan)
	if err != nil {
		return domain.SimulationResult{}, err
	}

	result := s.amortizeWithPayment(loan, newMonthlyPayment, 0, 0)
	result.ScenarioName = "increased_emi"
	result.Savings = domain.SimulationSavings{
		InterestSaved:   roundTo2Decimals(base.TotalInterest - result.TotalInterest),
		TimeSavedMonths: loan.TenureMonths - result.TimeToPayoffMonths,
	}
	return result, nil
}

// SimulateLumpSum amortizes under the original EMI but injects an extra
// principal payment at monthToApply. Capped at MaxSimulationMonths with an
// explicit Converged flag, same as SimulateIncreasedEMI.
func (s *SimulationService) SimulateLumpSum(
	loan domain.Loan,
	lumpSum float64,
	monthToApply int,
) (domain.SimulationResult, error) {

	if lumpSum <= 0 {
		return domain.SimulationResult{}, fmt.Errorf("%w: abono extraordinario inválido", domain.ErrInvalidParameter)
	}
	if monthToApply < 1 || monthToApply > MaxSimulationMonths {
		return domain.SimulationResult{}, fmt.Errorf("%w: mes de aplicación inválido", domain.ErrInvalidParameter)
	}

	base, err := s.baseline(loan)
	if err != nil {
		return domain.SimulationResult{}, err
	}

	cuota := monthlyPayment(loan.Principal, loan.AnnualInterestRate, loan.TenureMonths)
	result := s.amortizeWithPayment(loan, cuota, lumpSum, monthToApply)
	result.ScenarioName = "lump_sum"
	result.MonthlyEMI = base.MonthlyEMI
	result.Savings = domain.SimulationSavings{
		InterestSaved:   roundTo2Decimals(base.TotalInterest - result.TotalInterest),
		TimeSavedMonths: loan.TenureMonths - result.TimeToPayoffMonths,
	}
	return result, nil
}

// SimulateRefinance recomputes the EMI and schedule at a new rate. A zero
// newTenureMonths keeps the loan's current tenure. No iterative loop is
// needed; refinancing is a clean re-derivation, so Converged is always true.
func (s *SimulationService) SimulateRefinance(
	loan domain.Loan,
	newAnnualRate float64,
	newTenureMonths int,
) (domain.SimulationResult, error) {

	if newTenureMonths == 0 {
		newTenureMonths = loan.TenureMonths
	}

	base, err := s.baseline(loan)
	if err != nil {
		return domain.SimulationResult{}, err
	}

	input := domain.LoanInput{
		Principal:          loan.Principal,
		AnnualInterestRate: newAnnualRate,
		TenureMonths:       newTenureMonths,
	}
	refi, err := s.loanService.CalculateEMI(input)
	if err != nil {
		return domain.SimulationResult{}, err
	}
	schedule, err := s.loanService.GenerateSchedule(input, scheduleStart(loan))
	if err != nil {
		return domain.SimulationResult{}, err
	}

	return domain.SimulationResult{
		ScenarioName:       "refinance",
		MonthlyEMI:         refi.MonthlyEMI,
		TotalInterest:      refi.TotalInterest,
		TotalPayable:       refi.TotalPayable,
		TimeToPayoffMonths: newTenureMonths,
		Converged:          true,
		Schedule:           schedule,
		Savings: domain.SimulationSavings{
			InterestSaved:   roundTo2Decimals(base.TotalInterest - refi.TotalInterest),
			TimeSavedMonths: loan.TenureMonths - newTenureMonths,
		},
	}, nil
}

// amortizeWithPayment corre la amortización mes a mes con un pago fijo,
// aplicando opcionalmente un abono extra en lumpSumMonth (0 = sin abono).
// El interés se recalcula cada mes sobre el saldo restante.
func (s *SimulationService) amortizeWithPayment(
	loan domain.Loan,
	payment float64,
	lumpSum float64,
	lumpSumMonth int,
) domain.SimulationResult {

	tasaMensual := (loan.AnnualInterestRate / 100) / 12
	saldo := loan.Principal
	start := scheduleStart(loan)

	schedule := []domain.RepaymentScheduleEntry{}
	totalInteres := 0.0
	mes := 0

	for saldo > 0 && mes < MaxSimulationMonths {
		mes++
		interes := roundTo2Decimals(saldo * tasaMensual)
		totalInteres += interes

		capital := roundTo2Decimals(payment - interes)
		if mes == lumpSumMonth {
			// El abono extraordinario reduce capital además del pago normal.
			capital = roundTo2Decimals(capital + lumpSum)
		}
		if capital > saldo {
			capital = saldo
		}
		if capital < 0 {
			capital = 0
		}

		saldo = roundTo2Decimals(saldo - capital)
		if saldo < BalanceTolerance {
			// Absorber residuos de redondeo en el último mes.
			capital = roundTo2Decimals(capital + saldo)
			saldo = 0
		}

		schedule = append(schedule, domain.RepaymentScheduleEntry{
			Month:            mes,
			PrincipalPayment: capital,
			InterestPayment:  interes,
			RemainingBalance: saldo,
			DueDate:          start.AddDate(0, mes, 0),
			Paid:             false,
		})
	}

	totalInteres = roundTo2Decimals(totalInteres)
	return domain.SimulationResult{
		MonthlyEMI:         roundTo2Decimals(payment),
		TotalInterest:      totalInteres,
		TotalPayable:       roundTo2Decimals(loan.Principal + totalInteres),
		TimeToPayoffMonths: mes,
		Converged:          saldo == 0,
		Schedule:           schedule,
	}
}
