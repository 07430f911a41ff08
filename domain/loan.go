package domain

import "time"

// LoanStatus es el estado de vida de un préstamo. Las transiciones las maneja
// la capa de persistencia; el motor solo lee el estado.
type LoanStatus string

const (
	LoanStatusActive  LoanStatus = "active"
	LoanStatusClosed  LoanStatus = "closed"
	LoanStatusOverdue LoanStatus = "overdue"
)

type Loan struct {
	ID                 string     `json:"id"`
	Principal          float64    `json:"principal"`
	AnnualInterestRate float64    `json:"annual_interest_rate"` // porcentaje nominal anual
	TenureMonths       int        `json:"tenure_months"`
	RemainingAmount    float64    `json:"remaining_amount"`
	MonthlyInstallment float64    `json:"monthly_installment"`
	TotalInterest      float64    `json:"total_interest"` // interés total conocido del préstamo
	NextDueDate        time.Time  `json:"next_due_date"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            time.Time  `json:"end_date"`
	Status             LoanStatus `json:"status"`
}

// IsActive reports whether the loan participates in strategy ordering.
func (l Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}

type LoanInput struct {
	Principal          float64 `json:"principal"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
	TenureMonths       int     `json:"tenure_months"`
}

type LoanResult struct {
	MonthlyEMI    float64 `json:"monthly_emi"`
	TotalInterest float64 `json:"total_interest"`
	TotalPayable  float64 `json:"total_payable"`
}
