// Package metrics registers the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	DocumentsParsedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kmlpser_documents_parsed_total",
		Help: "Documents handed to the parser by outcome",
	}, []string{"outcome"})
	FeaturesParsedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kmlpser_features_parsed_total",
		Help: "Features produced by the parser",
	})
	FeaturesDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kmlpser_features_dropped_total",
		Help: "Placemarks dropped for lack of coordinates",
	})
	CoordinateTokensSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kmlpser_coordinate_tokens_skipped_total",
		Help: "Malformed coordinate tokens ignored by the parser",
	})
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kmlpser_analyses_total",
		Help: "Feature analyses by outcome",
	}, []string{"outcome"})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kmlpser_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kmlpser_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(DocumentsParsedTotal)
	prometheus.MustRegister(FeaturesParsedTotal)
	prometheus.MustRegister(FeaturesDroppedTotal)
	prometheus.MustRegister(CoordinateTokensSkippedTotal)
	prometheus.MustRegister(AnalysesTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
