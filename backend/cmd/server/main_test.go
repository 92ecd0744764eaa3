package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"company-graph/backend/internal/graph"
	"company-graph/backend/internal/records"
	"company-graph/backend/pkg/config"
)

func TestGinMode(t *testing.T) {
	assert.Equal(t, gin.ReleaseMode, ginMode(&config.Config{Env: "development"}))
	assert.Equal(t, gin.DebugMode, ginMode(&config.Config{Env: "development", Debug: true}))
	assert.Equal(t, gin.ReleaseMode, ginMode(&config.Config{Env: "production", Debug: true}))
}

func TestPublishGraphStats(t *testing.T) {
	g := graph.Build(records.NewDefaultStore())

	assert.NotPanics(t, func() {
		publishGraphStats(zap.NewNop(), g)
	})
}
