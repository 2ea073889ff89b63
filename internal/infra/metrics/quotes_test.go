//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/domain/plan"
	"manga-cafe-billing/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewQuoteMetrics(reg)
	require.NoError(t, err)

	jst := time.FixedZone("JST", 9*60*60)
	result, err := fee.NewDefaultCalculator().Calculate(
		time.Date(2025, 6, 4, 20, 0, 0, 0, jst),
		time.Date(2025, 6, 5, 6, 30, 0, 0, jst),
		plan.Pack8Hour,
	)
	require.NoError(t, err)

	m.QuoteCalculated(result)
	m.QuoteRejected("invalid_course", "invalid_plan")
	m.QuoteRejected("pack_3hour", "invalid_interval")
	m.QuoteRejected("nope", "invalid_plan")

	count, err := testutil.GatherAndCount(reg, "manga_cafe_quotes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range metric.GetLabel() {
				key += "/" + lp.GetValue()
			}
			if c := metric.GetCounter(); c != nil {
				values[key] = c.GetValue()
			}
		}
	}

	assert.Equal(t, 1.0, values["manga_cafe_quotes_total/pack_8hour"])
	assert.Equal(t, 6.0, values["manga_cafe_extension_blocks_total/night"])
	assert.Equal(t, 9.0, values["manga_cafe_extension_blocks_total/day"])
	assert.Equal(t, 2.0, values["manga_cafe_quote_rejections_total/invalid_plan"])
	assert.Equal(t, 1.0, values["manga_cafe_quote_rejections_total/invalid_interval"])
}

func TestQuoteMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewQuoteMetrics(reg)
	require.NoError(t, err)

	_, err = metrics.NewQuoteMetrics(reg)
	assert.Error(t, err)
}
