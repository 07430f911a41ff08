package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Handlers agrupa todos los handlers que monta el router.
type Handlers struct {
	Loan       *LoanHandler
	Risk       *RiskHandler
	Store      *LoanStoreHandler
	Alert      *AlertHandler
	Simulation *SimulationHandler
	Strategy   *StrategyHandler
	Insight    *InsightHandler
}

// NewRouter builds the chi router with CORS and rate limiting applied to
// every engine endpoint.
func NewRouter(h Handlers, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(limiter.Middleware)

	r.Post("/loan/calculate", h.Loan.CalculateEMI)
	r.Post("/loan/schedule", h.Loan.GenerateSchedule)
	r.Post("/loan/risk", h.Risk.ClassifyRatio)

	r.Route("/loans", func(r chi.Router) {
		r.Post("/", h.Store.Create)
		r.Get("/", h.Store.List)
		r.Post("/strategies", h.Strategy.ComputeStrategies)
		r.Post("/payoff-plan", h.Strategy.PayoffPlan)
		r.Post("/insights", h.Insight.GenerateInsights)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Store.Get)
			r.Get("/alerts", h.Alert.GetAlerts)
			r.Post("/simulate", h.Simulation.Simulate)
		})
	})

	return r
}
