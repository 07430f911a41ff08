package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"loan-insights/config"
	httpLayer "loan-insights/http"
	"loan-insights/repository"
	"loan-insights/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()

	loanRepo := repository.NewLoanRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr)
	} else {
		cache = repository.NewMockCache()
	}

	loanService := service.NewLoanService()
	riskService := service.NewRiskService()
	alertService := service.NewAlertService()
	strategyService := service.NewStrategyService(logger)
	simulationService := service.NewSimulationService(loanService)
	insightService := service.NewInsightService(riskService, cache, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Loan:       httpLayer.NewLoanHandler(loanService),
		Risk:       httpLayer.NewRiskHandler(riskService),
		Store:      httpLayer.NewLoanStoreHandler(loanRepo),
		Alert:      httpLayer.NewAlertHandler(alertService, loanRepo),
		Simulation: httpLayer.NewSimulationHandler(simulationService, loanRepo),
		Strategy:   httpLayer.NewStrategyHandler(strategyService),
		Insight:    httpLayer.NewInsightHandler(insightService),
	}, rateLimiter)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSecs) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("Error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error during server shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
