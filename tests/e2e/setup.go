//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"manga-cafe-billing/cmd/bootstrap"
	"manga-cafe-billing/cmd/bootstrap/components"
	"manga-cafe-billing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds the full application graph in process, without a listener
// ------------------------------------------------------------
func buildE2EApp(t *testing.T) (*gin.Engine, config.Config, *prometheus.Registry) {
	gin.SetMode(gin.TestMode)

	var (
		router   *gin.Engine
		cfg      config.Config
		registry *prometheus.Registry
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg, &registry),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, cfg, registry
}

// ------------------------------------------------------------
// Common setup for E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Config   config.Config
	Registry *prometheus.Registry
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	s.Router, s.Config, s.Registry = buildE2EApp(t)
	require.NotNil(t, s.Router, "router setup failed")
	require.NotNil(t, s.Registry, "metrics registry setup failed")
}
