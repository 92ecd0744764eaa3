package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"company-graph/backend/internal/api"
	"company-graph/backend/internal/chart"
	"company-graph/backend/internal/graph"
	"company-graph/backend/internal/metadata"
	"company-graph/backend/internal/metrics"
	"company-graph/backend/internal/records"
	"company-graph/backend/pkg/config"
	"company-graph/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...")

	// Build the in-memory dataset and graph once; both are read-only afterwards
	store := records.NewDefaultStore()
	companyGraph := graph.Build(store)
	publishGraphStats(log, companyGraph)

	renderer := chart.NewRenderer(chart.Options{
		WidthInches:  cfg.ChartWidthInches,
		HeightInches: cfg.ChartHeightInches,
	})
	server := api.NewServer(companyGraph, metadata.NewService(store, renderer), log)

	// Setup Gin router
	gin.SetMode(ginMode(cfg))
	router := server.Router()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port), zap.Bool("debug", cfg.Debug))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// ginMode picks debug mode only when DEBUG is set outside production
func ginMode(cfg *config.Config) string {
	if cfg.Debug && !cfg.IsProduction() {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

func publishGraphStats(log *zap.Logger, g *graph.Graph) {
	stats := g.Stats()
	byRelation := make(map[string]int, len(stats.ByRelation))
	for rel, n := range stats.ByRelation {
		byRelation[string(rel)] = n
	}
	metrics.SetGraphSize(stats.Nodes, byRelation)

	log.Info("Relationship graph built",
		zap.Int("nodes", stats.Nodes),
		zap.Int("edges", stats.Edges),
		zap.Int("sales_edges", stats.ByRelation[graph.RelationSales]),
		zap.Int("esg_edges", stats.ByRelation[graph.RelationESG]),
		zap.Int("financial_edges", stats.ByRelation[graph.RelationFinancial]),
	)
}
