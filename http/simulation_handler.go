package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loan-insights/domain"
	"loan-insights/repository"
	"loan-insights/service"
)

type SimulationHandler struct {
	service *service.SimulationService
	repo    repository.LoanRepository
}

func NewSimulationHandler(
	service *service.SimulationService,
	repo repository.LoanRepository,
) *SimulationHandler {
	return &SimulationHandler{service: service, repo: repo}
}

type simulationRequest struct {
	Scenario        string  `json:"scenario"` // "increased_emi" | "lump_sum" | "refinance"
	NewMonthlyEMI   float64 `json:"new_monthly_emi"`
	LumpSum         float64 `json:"lump_sum"`
	MonthToApply    int     `json:"month_to_apply"`
	NewAnnualRate   float64 `json:"new_annual_rate"`
	NewTenureMonths int     `json:"new_tenure_months"`
}

// Simulate responde POST /loans/{id}/simulate.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	loan, ok := h.repo.GetByID(id)
	if !ok {
		http.Error(w, "loan not found", http.StatusNotFound)
		return
	}

	var req simulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var result domain.SimulationResult
	var err error
	switch req.Scenario {
	case "increased_emi":
		result, err = h.service.SimulateIncreasedEMI(loan, req.NewMonthlyEMI)
	case "lump_sum":
		result, err = h.service.SimulateLumpSum(loan, req.LumpSum, req.MonthToApply)
	case "refinance":
		result, err = h.service.SimulateRefinance(loan, req.NewAnnualRate, req.NewTenureMonths)
	default:
		http.Error(w, "unknown scenario", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
