package repository

import (
	"sync"

	"loan-insights/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	mu    sync.RWMutex
	loans map[string]domain.Loan
	order []string
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		loans: make(map[string]domain.Loan),
	}
}

// Save stores or replaces the loan.
func (r *LoanRepositoryMemory) Save(loan domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.loans[loan.ID]; !exists {
		r.order = append(r.order, loan.ID)
	}
	r.loans[loan.ID] = loan
	return nil
}

// GetByID returns the loan and whether it exists.
func (r *LoanRepositoryMemory) GetByID(id string) (domain.Loan, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loan, ok := r.loans[id]
	return loan, ok
}

// List returns all loans in insertion order.
func (r *LoanRepositoryMemory) List() []domain.Loan {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Loan, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.loans[id])
	}
	return out
}
