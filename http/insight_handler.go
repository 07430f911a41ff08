package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"loan-insights/domain"
	"loan-insights/service"
)

type InsightHandler struct {
	service *service.InsightService
}

func NewInsightHandler(service *service.InsightService) *InsightHandler {
	return &InsightHandler{service: service}
}

type insightRequest struct {
	Loans         []domain.Loan `json:"loans"`
	MonthlyIncome float64       `json:"monthly_income"`
}

func (h *InsightHandler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	insights, err := h.service.GenerateInsights(req.Loans, req.MonthlyIncome)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"insights": insights})
}
