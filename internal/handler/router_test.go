//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"manga-cafe-billing/internal/domain/plan"
	"manga-cafe-billing/internal/handler"
	"manga-cafe-billing/internal/handler/api"
	"manga-cafe-billing/internal/handler/middleware"
	"manga-cafe-billing/internal/pkg/config"
	"manga-cafe-billing/tests/common/httptest"
	usecasemock "manga-cafe-billing/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, cfg config.Config) (*gin.Engine, *usecasemock.MockFeeUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	httpMetrics, err := middleware.NewHTTPMetrics(reg)
	require.NoError(t, err)

	uc := usecasemock.NewMockFeeUseCase(gomock.NewController(t))
	engine := gin.New()
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log), httpMetrics, reg, api.NewFeeHandler(uc, cfg))
	return engine, uc
}

func routeSet(engine *gin.Engine) map[string]bool {
	set := make(map[string]bool)
	for _, r := range engine.Routes() {
		set[r.Method+" "+r.Path] = true
	}
	return set
}

func TestNewRouter_Routes(t *testing.T) {
	engine, _ := newRouter(t, config.NewTestConfig())

	assert.Equal(t, map[string]bool{
		"GET /health":          true,
		"GET /metrics":         true,
		"GET /api/plans":       true,
		"POST /api/fees/quote": true,
	}, routeSet(engine))
}

func TestNewRouter_MetricsDisabled(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Metrics.Enabled = false
	engine, _ := newRouter(t, cfg)

	assert.NotContains(t, routeSet(engine), "GET /metrics")

	w := httptest.PerformRequest(t, engine, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRouter_DispatchesToHandlers(t *testing.T) {
	engine, uc := newRouter(t, config.NewTestConfig())
	uc.EXPECT().ListPlans(gomock.Any()).Return(plan.All()).Times(1)

	w := httptest.PerformRequest(t, engine, http.MethodGet, "/api/plans", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.PerformRequest(t, engine, http.MethodGet, "/api/fees/quote", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "quote only accepts POST")
}
