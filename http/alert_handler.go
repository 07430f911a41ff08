package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"loan-insights/repository"
	"loan-insights/service"
)

type AlertHandler struct {
	service *service.AlertService
	repo    repository.LoanRepository
}

func NewAlertHandler(service *service.AlertService, repo repository.LoanRepository) *AlertHandler {
	return &AlertHandler{service: service, repo: repo}
}

// GetAlerts responde GET /loans/{id}/alerts?monthly_income=N.
func (h *AlertHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	loan, ok := h.repo.GetByID(id)
	if !ok {
		http.Error(w, "loan not found", http.StatusNotFound)
		return
	}

	income, err := strconv.ParseFloat(r.URL.Query().Get("monthly_income"), 64)
	if err != nil {
		income = 0 // sin ingreso no se evalúa la regla de cuota alta
	}

	alerts := h.service.GenerateAlerts(loan, income)
	writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}
