package metrics

import (
	"manga-cafe-billing/internal/domain/fee"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "manga_cafe"

type QuoteMetrics struct {
	quotes           *prometheus.CounterVec
	rejections       *prometheus.CounterVec
	extensionBlocks  *prometheus.CounterVec
	extensionMinutes prometheus.Histogram
	totalIncludedTax prometheus.Histogram
}

func NewQuoteMetrics(reg prometheus.Registerer) (*QuoteMetrics, error) {
	m := &QuoteMetrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Number of fee quotes calculated, by plan.",
		}, []string{"plan"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_rejections_total",
			Help:      "Number of fee quotes rejected, by reason.",
		}, []string{"reason"}),
		extensionBlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extension_blocks_total",
			Help:      "Number of billed extension blocks, by rate.",
		}, []string{"rate"}),
		extensionMinutes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extension_minutes",
			Help:      "Extension minutes per quote.",
			Buckets:   []float64{0, 10, 30, 60, 120, 240, 480},
		}),
		totalIncludedTax: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_total_including_tax",
			Help:      "Post-tax total per quote in minor currency units.",
			Buckets:   prometheus.ExponentialBuckets(500, 2, 6),
		}),
	}

	for _, c := range []prometheus.Collector{m.quotes, m.rejections, m.extensionBlocks, m.extensionMinutes, m.totalIncludedTax} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *QuoteMetrics) QuoteCalculated(result fee.Result) {
	m.quotes.WithLabelValues(result.Plan.ID.String()).Inc()
	m.extensionMinutes.Observe(float64(result.ExtensionMinutes))
	m.totalIncludedTax.Observe(float64(result.TotalIncludingTax))

	night := result.NightBlocks()
	if night > 0 {
		m.extensionBlocks.WithLabelValues("night").Add(float64(night))
	}
	if day := len(result.Blocks) - night; day > 0 {
		m.extensionBlocks.WithLabelValues("day").Add(float64(day))
	}
}

// QuoteRejected drops the plan id to keep label cardinality bounded.
func (m *QuoteMetrics) QuoteRejected(_ string, reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}
