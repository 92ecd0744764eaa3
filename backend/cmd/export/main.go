package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"company-graph/backend/internal/graph"
	"company-graph/backend/internal/records"
	"company-graph/backend/pkg/config"
	apperrors "company-graph/backend/pkg/errors"
	"company-graph/backend/pkg/logger"
)

func main() {
	wipe := flag.Bool("wipe", false, "Delete previously exported companies before exporting")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall export timeout")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting graph export...")

	if err := run(*wipe, *timeout); err != nil {
		log.Error("Export failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	log.Info("Export completed")
}

func run(wipe bool, timeout time.Duration) error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return apperrors.NewExportFailed("config", err)
	}
	if err := cfg.ValidateNeo4j(); err != nil {
		return apperrors.NewExportFailed("config", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Initialize Neo4j driver
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		return apperrors.NewExportFailed("driver", err)
	}
	defer driver.Close(context.Background())

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return apperrors.NewExportFailed("connect", err)
	}

	exporter := graph.NewExporter(driver, cfg.Neo4jDatabase)

	log.Info("Creating constraints...")
	if err := exporter.EnsureConstraints(ctx); err != nil {
		log.Warn("Failed to create constraint (may already exist)", zap.Error(err))
	}

	if wipe {
		log.Info("Wiping previous export...")
		if err := exporter.Wipe(ctx); err != nil {
			return apperrors.NewExportFailed("wipe", err)
		}
	}

	g := graph.Build(records.NewDefaultStore())
	if _, err := exporter.Export(ctx, g); err != nil {
		return apperrors.NewExportFailed("write", err)
	}

	counts, err := exporter.CountRelationships(ctx)
	if err != nil {
		return apperrors.NewExportFailed("verify", err)
	}
	for kind, total := range counts {
		log.Info("Relationships in Neo4j", zap.String("type", kind), zap.Int64("total", total))
	}
	for kind, extra := range graph.ExcessRelationships(g, counts) {
		log.Warn("Neo4j holds more relationships than the graph; rerun with -wipe to replace the previous export",
			zap.String("type", kind),
			zap.Int64("extra", extra),
		)
	}
	return nil
}
