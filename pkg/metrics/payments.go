package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PaymentInitTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "payments",
			Name:      "init_total",
			Help:      "Payment initializations by provider and result",
		},
		[]string{"provider", "result"},
	)

	PaymentCallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "payments",
			Name:      "callbacks_total",
			Help:      "Provider callbacks by kind and disposition",
		},
		[]string{"provider", "kind", "disposition"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "payments",
			Name:      "provider_request_duration_seconds",
			Help:      "Outbound provider request latency in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"provider", "operation", "status"},
	)
)

func init() {
	Registry.MustRegister(PaymentInitTotal, PaymentCallbacksTotal, ProviderRequestDuration)
}

// ObserveProviderRequest records one outbound call started at start.
func ObserveProviderRequest(provider, operation, status string, start time.Time) {
	ProviderRequestDuration.WithLabelValues(provider, operation, status).Observe(time.Since(start).Seconds())
}
