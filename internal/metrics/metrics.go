package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	estimatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eprinter",
			Name:      "estimates_total",
			Help:      "Advisory estimates computed, by result",
		},
		[]string{"result"},
	)

	jobsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eprinter",
			Name:      "jobs_submitted_total",
			Help:      "Print jobs submitted, by mode and result",
		},
		[]string{"mode", "result"},
	)

	paymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eprinter",
			Name:      "payments_total",
			Help:      "Payment confirmations, by result",
		},
		[]string{"result"},
	)

	documentsUploaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eprinter",
			Name:      "documents_uploaded_total",
			Help:      "Document uploads, by result",
		},
		[]string{"result"},
	)

	pricingFetchLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "eprinter",
			Name:      "pricing_fetch_duration_seconds",
			Help:      "Duration of pricing snapshot fetches",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		estimatesTotal,
		jobsSubmitted,
		paymentsTotal,
		documentsUploaded,
		pricingFetchLatency,
	)
}

func EstimateComputed(result string)      { estimatesTotal.WithLabelValues(result).Inc() }
func JobSubmitted(mode, result string)    { jobsSubmitted.WithLabelValues(mode, result).Inc() }
func PaymentConfirmed(result string)      { paymentsTotal.WithLabelValues(result).Inc() }
func DocumentUploaded(result string)      { documentsUploaded.WithLabelValues(result).Inc() }
func ObservePricingFetch(seconds float64) { pricingFetchLatency.Observe(seconds) }

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler { return promhttp.Handler() }
