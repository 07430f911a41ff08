package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"loan-insights/domain"
	"loan-insights/repository"
	"loan-insights/service"
)

func testRouter() http.Handler {
	loanService := service.NewLoanService()
	riskService := service.NewRiskService()
	repo := repository.NewLoanRepositoryMemory()
	cache := repository.NewMockCache()

	limiter := NewRateLimiter(1000, time.Minute)

	return NewRouter(Handlers{
		Loan:       NewLoanHandler(loanService),
		Risk:       NewRiskHandler(riskService),
		Store:      NewLoanStoreHandler(repo),
		Alert:      NewAlertHandler(service.NewAlertService(), repo),
		Simulation: NewSimulationHandler(service.NewSimulationService(loanService), repo),
		Strategy:   NewStrategyHandler(service.NewStrategyService(zap.NewNop())),
		Insight:    NewInsightHandler(service.NewInsightService(riskService, cache, zap.NewNop())),
	}, limiter)
}

func TestCalculateEMIHandler_OK(t *testing.T) {

	router := testRouter()

	body := []byte(`{
		"principal": 10000,
		"annual_interest_rate": 12,
		"tenure_months": 24
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.LoanResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.MonthlyEMI <= 0 {
		t.Errorf("expected positive EMI, got %.2f", result.MonthlyEMI)
	}
}

func TestCalculateEMIHandler_BadRequest(t *testing.T) {

	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBuffer([]byte(`{invalid-json}`)))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateEMIHandler_InvalidParameter(t *testing.T) {

	router := testRouter()

	body := []byte(`{"principal": -5, "annual_interest_rate": 12, "tenure_months": 24}`)
	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateEMIHandler_MethodNotAllowed(t *testing.T) {

	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/loan/calculate", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestLoanStore_CreateAndAlerts(t *testing.T) {

	router := testRouter()

	loan := domain.Loan{
		Principal:          10000,
		AnnualInterestRate: 12,
		TenureMonths:       24,
		MonthlyInstallment: 470.73,
		NextDueDate:        time.Now().AddDate(0, 0, 3),
	}
	body, _ := json.Marshal(loan)

	req := httptest.NewRequest(http.MethodPost, "/loans", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var created domain.Loan
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated loan id")
	}
	if created.Status != domain.LoanStatusActive {
		t.Errorf("expected default status active, got %s", created.Status)
	}

	// El préstamo vence en 3 días: debe producir la alerta due_soon.
	req = httptest.NewRequest(http.MethodGet, "/loans/"+created.ID+"/alerts?monthly_income=10000", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Alerts []domain.Alert `json:"alerts"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Alerts) != 1 || resp.Alerts[0].Type != domain.AlertTypeDueSoon {
		t.Errorf("expected one due_soon alert, got %+v", resp.Alerts)
	}
}

func TestSimulationHandler_RefinanceByID(t *testing.T) {

	router := testRouter()

	loan := domain.Loan{
		ID:                 "loan-refi",
		Principal:          100000,
		AnnualInterestRate: 10,
		TenureMonths:       60,
		Status:             domain.LoanStatusActive,
	}
	body, _ := json.Marshal(loan)

	req := httptest.NewRequest(http.MethodPost, "/loans", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	simBody := []byte(`{"scenario": "refinance", "new_annual_rate": 7}`)
	req = httptest.NewRequest(http.MethodPost, "/loans/loan-refi/simulate", bytes.NewBuffer(simBody))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.SimulationResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.ScenarioName != "refinance" || !result.Converged {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Savings.InterestSaved <= 0 {
		t.Errorf("expected savings at a lower rate, got %.2f", result.Savings.InterestSaved)
	}
}

func TestSimulationHandler_UnknownLoan(t *testing.T) {

	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/loans/missing/simulate", bytes.NewBuffer([]byte(`{"scenario":"refinance"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestStrategyHandler_BothOrderings(t *testing.T) {

	router := testRouter()

	body := []byte(`{"loans": [
		{"id": "A", "remaining_amount": 50000, "annual_interest_rate": 20, "monthly_installment": 2500, "status": "active"},
		{"id": "B", "remaining_amount": 20000, "annual_interest_rate": 10, "monthly_installment": 1000, "status": "active"}
	]}`)

	req := httptest.NewRequest(http.MethodPost, "/loans/strategies", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Snowball  domain.StrategyResult `json:"snowball"`
		Avalanche domain.StrategyResult `json:"avalanche"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Snowball.Payments[0].LoanID != "B" {
		t.Errorf("expected snowball to start with B, got %+v", resp.Snowball.Payments)
	}
	if resp.Avalanche.Payments[0].LoanID != "A" {
		t.Errorf("expected avalanche to start with A, got %+v", resp.Avalanche.Payments)
	}
}

func TestInsightHandler_RequiresJSONContentType(t *testing.T) {

	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/loans/insights", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestRateLimiter_Blocks(t *testing.T) {

	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	if !limiter.Allow("1.2.3.4") || !limiter.Allow("1.2.3.4") {
		t.Fatalf("expected first two requests to pass")
	}
	if limiter.Allow("1.2.3.4") {
		t.Errorf("expected third request to be limited")
	}
	if !limiter.Allow("5.6.7.8") {
		t.Errorf("expected other clients to be unaffected")
	}
}
