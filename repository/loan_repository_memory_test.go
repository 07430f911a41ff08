package repository

import (
	"testing"

	"loan-insights/domain"
)

func TestLoanRepositoryMemory_SaveAndGet(t *testing.T) {

	repo := NewLoanRepositoryMemory()

	loan := domain.Loan{ID: "loan-1", Principal: 1000, Status: domain.LoanStatusActive}
	if err := repo.Save(loan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := repo.GetByID("loan-1")
	if !ok {
		t.Fatalf("expected loan to exist")
	}
	if got.Principal != 1000 {
		t.Errorf("expected principal 1000, got %.2f", got.Principal)
	}

	if _, ok := repo.GetByID("missing"); ok {
		t.Errorf("did not expect missing loan")
	}
}

func TestLoanRepositoryMemory_ListKeepsInsertionOrder(t *testing.T) {

	repo := NewLoanRepositoryMemory()

	for _, id := range []string{"c", "a", "b"} {
		if err := repo.Save(domain.Loan{ID: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Reemplazar no debe duplicar ni reordenar.
	if err := repo.Save(domain.Loan{ID: "a", Principal: 99}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loans := repo.List()
	if len(loans) != 3 {
		t.Fatalf("expected 3 loans, got %d", len(loans))
	}
	if loans[0].ID != "c" || loans[1].ID != "a" || loans[2].ID != "b" {
		t.Errorf("unexpected order: %v", loans)
	}
	if loans[1].Principal != 99 {
		t.Errorf("expected replaced loan, got %+v", loans[1])
	}
}
