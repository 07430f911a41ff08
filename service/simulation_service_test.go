package service

import (
	"errors"
	"testing"
	"time"

	"loan-insights/domain"
)

func simulationLoan() domain.Loan {
	return domain.Loan{
		ID:                 "loan-1",
		Principal:          100000,
		AnnualInterestRate: 10,
		TenureMonths:       60,
		RemainingAmount:    100000,
		StartDate:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:             domain.LoanStatusActive,
	}
}

func TestSimulateIncreasedEMI_SavesInterestAndTime(t *testing.T) {

	loans := NewLoanService()
	service := NewSimulationService(loans)
	loan := simulationLoan()

	base, err := loans.CalculateEMI(domain.LoanInput{
		Principal:          loan.Principal,
		AnnualInterestRate: loan.AnnualInterestRate,
		TenureMonths:       loan.TenureMonths,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := service.SimulateIncreasedEMI(loan, base.MonthlyEMI+500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ScenarioName != "increased_emi" {
		t.Errorf("unexpected scenario name %s", result.ScenarioName)
	}
	if !result.Converged {
		t.Fatalf("expected convergence")
	}
	if result.TimeToPayoffMonths >= loan.TenureMonths {
		t.Errorf("expected faster payoff, got %d months", result.TimeToPayoffMonths)
	}
	if result.Savings.InterestSaved <= 0 {
		t.Errorf("expected positive interest savings, got %.2f", result.Savings.InterestSaved)
	}
	if result.Savings.TimeSavedMonths <= 0 {
		t.Errorf("expected positive time savings, got %d", result.Savings.TimeSavedMonths)
	}

	final := result.Schedule[len(result.Schedule)-1]
	if final.RemainingBalance != 0 {
		t.Errorf("expected zero final balance, got %.2f", final.RemainingBalance)
	}
}

func TestSimulateIncreasedEMI_NonConvergence(t *testing.T) {

	loans := NewLoanService()
	service := NewSimulationService(loans)
	loan := simulationLoan()

	// 100000 al 10% acumula ~833 de interés mensual; un pago de 100 nunca
	// reduce el saldo.
	result, err := service.SimulateIncreasedEMI(loan, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Converged {
		t.Fatalf("expected non-convergence")
	}
	if result.TimeToPayoffMonths != MaxSimulationMonths {
		t.Errorf("expected cap at %d months, got %d", MaxSimulationMonths, result.TimeToPayoffMonths)
	}
	if len(result.Schedule) != MaxSimulationMonths {
		t.Errorf("expected truncated schedule of %d entries, got %d", MaxSimulationMonths, len(result.Schedule))
	}
}

func TestSimulateLumpSum_ShortensLoan(t *testing.T) {

	loans := NewLoanService()
	service := NewSimulationService(loans)
	loan := simulationLoan()

	result, err := service.SimulateLumpSum(loan, 20000, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ScenarioName != "lump_sum" {
		t.Errorf("unexpected scenario name %s", result.ScenarioName)
	}
	if !result.Converged {
		t.Fatalf("expected convergence")
	}
	if result.TimeToPayoffMonths >= loan.TenureMonths {
		t.Errorf("expected faster payoff, got %d months", result.TimeToPayoffMonths)
	}
	if result.Savings.InterestSaved <= 0 {
		t.Errorf("expected positive interest savings, got %.2f", result.Savings.InterestSaved)
	}
}

func TestSimulateLumpSum_InvalidInput(t *testing.T) {

	loans := NewLoanService()
	service := NewSimulationService(loans)
	loan := simulationLoan()

	if _, err := service.SimulateLumpSum(loan, 0, 12); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero lump sum, got %v", err)
	}
	if _, err := service.SimulateLumpSum(loan, 5000, 0); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for month 0, got %v", err)
	}
	if _, err := service.SimulateIncreasedEMI(loan, -10); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for negative payment, got %v", err)
	}
}

func TestSimulateRefinance_LowerRateLowersInterest(t *testing.T) {

	loans := NewLoanService()
	service := NewSimulationService(loans)
	loan := simulationLoan()

	refi7, err := service.SimulateRefinance(loan, 7, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refi5, err := service.SimulateRefinance(loan, 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if refi7.ScenarioName != "refinance" || !refi7.Converged {
		t.Errorf("unexpected refinance result %+v", refi7)
	}
	// Monotonicidad: menor tasa, estrictamente menos interés.
	if refi5.TotalInterest >= refi7.TotalInterest {
		t.Errorf("expected interest at 5%% (%.2f) < at 7%% (%.2f)", refi5.TotalInterest, refi7.TotalInterest)
	}
	if refi7.Savings.InterestSaved <= 0 {
		t.Errorf("expected savings against the 10%% baseline, got %.2f", refi7.Savings.InterestSaved)
	}
	if len(refi7.Schedule) != loan.TenureMonths {
		t.Errorf("expected schedule of %d entries, got %d", loan.TenureMonths, len(refi7.Schedule))
	}
}

func TestSimulateRefinance_SameRateSameInterest(t *testing.T) {

	loans := NewLoanService()
	service := NewSimulationService(loans)
	loan := simulationLoan()

	refi, err := service.SimulateRefinance(loan, loan.AnnualInterestRate, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if refi.Savings.InterestSaved != 0 {
		t.Errorf("refinancing at the same rate must not change interest, got %.2f", refi.Savings.InterestSaved)
	}
	if refi.Savings.TimeSavedMonths != 0 {
		t.Errorf("same tenure must not change payoff time, got %d", refi.Savings.TimeSavedMonths)
	}
}
