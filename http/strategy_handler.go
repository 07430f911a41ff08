package http

import (
	"encoding/json"
	"net/http"

	"loan-insights/domain"
	"loan-insights/service"
)

type StrategyHandler struct {
	service *service.StrategyService
}

func NewStrategyHandler(service *service.StrategyService) *StrategyHandler {
	return &StrategyHandler{service: service}
}

type strategyRequest struct {
	Loans []domain.Loan `json:"loans"`
}

// ComputeStrategies responde POST /loans/strategies con ambos ordenamientos.
func (h *StrategyHandler) ComputeStrategies(w http.ResponseWriter, r *http.Request) {
	var req strategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"snowball":  h.service.ComputeSnowball(req.Loans),
		"avalanche": h.service.ComputeAvalanche(req.Loans),
	})
}

type payoffPlanRequest struct {
	Loans         []domain.Loan `json:"loans"`
	MonthlyBudget float64       `json:"monthly_budget"`
	Strategy      string        `json:"strategy"` // "snowball" | "avalanche" | "compare"
}

// PayoffPlan responde POST /loans/payoff-plan con la simulación de
// presupuesto compartido.
func (h *StrategyHandler) PayoffPlan(w http.ResponseWriter, r *http.Request) {
	var req payoffPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := h.service.SimulatePayoffPlan(req.Loans, req.MonthlyBudget, req.Strategy)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
