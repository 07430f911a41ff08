package domain

// StrategyPayment es una entrada de la lista ordenada "paga estos en este orden".
type StrategyPayment struct {
	LoanID        string  `json:"loan_id"`
	PaymentAmount float64 `json:"payment_amount"`
}

// StrategyResult es el resultado del modelo simplificado por-préstamo:
// cada préstamo se liquida de forma independiente, la estrategia solo
// ordena la atención.
type StrategyResult struct {
	Strategy       string            `json:"strategy"` // "snowball" | "avalanche"
	Payments       []StrategyPayment `json:"payments"`
	TotalInterest  float64           `json:"total_interest"`
	MonthsToPayoff int               `json:"months_to_payoff"`
}

// MonthlyPayment es el pago de un préstamo dentro de un mes simulado.
type MonthlyPayment struct {
	LoanID           string  `json:"loan_id"`
	Payment          float64 `json:"payment"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type MonthlyPlan struct {
	Month     int              `json:"month"`
	Payments  []MonthlyPayment `json:"payments"`
	TotalPaid float64          `json:"total_paid"`
}

// PayoffPlan es la simulación mes a mes con un presupuesto compartido:
// los mínimos se cubren primero y el excedente va al préstamo prioritario
// según la estrategia.
type PayoffPlan struct {
	Strategy          string              `json:"strategy"`
	TotalDebt         float64             `json:"total_debt"`
	TotalInterestPaid float64             `json:"total_interest_paid"`
	MonthsToPayoff    int                 `json:"months_to_payoff"`
	MonthlyPlan       []MonthlyPlan       `json:"monthly_plan"`
	Comparison        *StrategyComparison `json:"comparison,omitempty"`
}

type StrategyComparison struct {
	Snowball  PlanSummary `json:"snowball"`
	Avalanche PlanSummary `json:"avalanche"`
	Savings   struct {
		InterestSaved float64 `json:"interest_saved"`
		MonthsSaved   int     `json:"months_saved"`
	} `json:"savings"`
}

type PlanSummary struct {
	TotalInterestPaid float64 `json:"total_interest_paid"`
	MonthsToPayoff    int     `json:"months_to_payoff"`
}
