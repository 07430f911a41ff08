package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"loan-insights/domain"
	"loan-insights/repository"
)

// LoanStoreHandler expone el alta y consulta de préstamos registrados. La
// persistencia real vive fuera del motor; este repositorio existe para que
// los endpoints por ID (alertas, simulaciones) tengan de dónde leer.
type LoanStoreHandler struct {
	repo repository.LoanRepository
}

func NewLoanStoreHandler(repo repository.LoanRepository) *LoanStoreHandler {
	return &LoanStoreHandler{repo: repo}
}

func (h *LoanStoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var loan domain.Loan
	if err := json.NewDecoder(r.Body).Decode(&loan); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if loan.ID == "" {
		loan.ID = uuid.NewString()
	}
	if loan.Status == "" {
		loan.Status = domain.LoanStatusActive
	}
	if loan.RemainingAmount == 0 {
		loan.RemainingAmount = loan.Principal
	}

	if err := h.repo.Save(loan); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, loan)
}

func (h *LoanStoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	loan, ok := h.repo.GetByID(id)
	if !ok {
		http.Error(w, "loan not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanStoreHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"loans": h.repo.List()})
}
