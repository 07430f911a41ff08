package repository

import "loan-insights/domain"

// LoanRepository abastece al motor con registros de préstamos. El motor
// nunca muta préstamos; las transiciones de estado son responsabilidad de la
// capa de persistencia.
type LoanRepository interface {
	Save(loan domain.Loan) error
	GetByID(id string) (domain.Loan, bool)
	List() []domain.Loan
}
