package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the terminal service metrics. Register them on a dedicated registry
// so tests can build as many instances as they like.
type Metrics struct {
	BillingSubmissions *prometheus.CounterVec
	VoucherChecks      *prometheus.CounterVec
	BackendLatency     *prometheus.HistogramVec
	OpenTransactions   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BillingSubmissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "billing_submissions_total",
			Help:      "Billing submissions by outcome",
		}, []string{"status"}),
		VoucherChecks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voucher_checks_total",
			Help:      "Voucher validation calls by result",
		}, []string{"result"}),
		BackendLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of calls to the spa backend",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		OpenTransactions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transactions_open",
			Help:      "Unsubmitted transactions currently held in memory",
		}),
	}
}

// NewNopMetrics registers on a throwaway registry.
func NewNopMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry(), "nop")
}
