package http

import (
	"encoding/json"
	"net/http"

	"loan-insights/service"
)

type RiskHandler struct {
	service *service.RiskService
}

func NewRiskHandler(service *service.RiskService) *RiskHandler {
	return &RiskHandler{service: service}
}

type riskRequest struct {
	TotalMonthlyEMI float64 `json:"total_monthly_emi"`
	MonthlyIncome   float64 `json:"monthly_income"`
}

func (h *RiskHandler) ClassifyRatio(w http.ResponseWriter, r *http.Request) {
	var req riskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.ClassifyLoanRatio(req.TotalMonthlyEMI, req.MonthlyIncome)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
