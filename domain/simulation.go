package domain

// SimulationSavings compara un escenario contra la línea base del préstamo.
type SimulationSavings struct {
	InterestSaved   float64 `json:"interest_saved"`
	TimeSavedMonths int     `json:"time_saved_months"`
}

// SimulationResult es el resultado de un escenario what-if. Converged es
// false cuando el saldo no llega a cero dentro del tope de iteración; en ese
// caso el cronograma devuelto está truncado y no debe tratarse como un plan
// de pago real.
type SimulationResult struct {
	ScenarioName       string                   `json:"scenario_name"`
	MonthlyEMI         float64                  `json:"monthly_emi"`
	TotalInterest      float64                  `json:"total_interest"`
	TotalPayable       float64                  `json:"total_payable"`
	TimeToPayoffMonths int                      `json:"time_to_payoff_months"`
	Converged          bool                     `json:"converged"`
	Schedule           []RepaymentScheduleEntry `json:"schedule"`
	Savings            SimulationSavings        `json:"savings"`
}
