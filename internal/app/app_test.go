package app

import (
	"testing"

	"learnhub_backend/internal/config"
	"learnhub_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplyConfigFansOutToCallbacks(t *testing.T) {
	logger.Log = zap.NewNop()

	a := &App{}
	var first, second *config.Config
	a.RegisterConfigCallback(func(cfg *config.Config) { first = cfg })
	a.RegisterConfigCallback(func(cfg *config.Config) { second = cfg })

	cfg := &config.Config{}
	a.ApplyConfig(cfg)

	require.Same(t, cfg, a.Config)
	require.Same(t, cfg, first)
	require.Same(t, cfg, second)
}
