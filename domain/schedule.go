package domain

import "time"

// RepaymentScheduleEntry es una fila del cronograma de amortización.
// PrincipalPayment + InterestPayment suman la cuota del mes, salvo el último
// mes donde el principal se fuerza al saldo restante exacto.
type RepaymentScheduleEntry struct {
	Month            int       `json:"month"`
	PrincipalPayment float64   `json:"principal_payment"`
	InterestPayment  float64   `json:"interest_payment"`
	RemainingBalance float64   `json:"remaining_balance"`
	DueDate          time.Time `json:"due_date"`
	Paid             bool      `json:"paid"`
}
