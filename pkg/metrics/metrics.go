// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pulse"

// Registry is the service registry. It is separate from the default one so
// tests can gather it without global collectors leaking in.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// PipelineRuns counts engine runs by entry point and outcome.
var PipelineRuns = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "pipeline_runs_total",
	Help:      "Engine pipeline runs by kind (forecast, decision, scenarios, scheduled) and result.",
}, []string{"kind", "result"})

// PipelineDuration observes end to end run latency including collaborators.
var PipelineDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "pipeline_duration_seconds",
	Help:      "Latency of pipeline runs.",
	Buckets:   prometheus.DefBuckets,
}, []string{"kind"})

// ForecastFallbacks counts forecasts that did not use the external model.
var ForecastFallbacks = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "forecast_fallbacks_total",
	Help:      "Forecasts produced by the trend path, by model source.",
}, []string{"source"})

// AlertsGenerated counts persisted alerts by severity.
var AlertsGenerated = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "alerts_generated_total",
	Help:      "Alerts persisted by severity.",
}, []string{"severity"})

// RiskLevel is the last computed risk rank per hospital and department (0 Low .. 3 Critical).
var RiskLevel = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "risk_level",
	Help:      "Last computed risk rank per scope.",
}, []string{"hospital_id", "department_id"})

var WebsocketConnections = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "websocket_connections",
	Help:      "Active websocket connections.",
})

var HTTPRequests = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "http_requests_total",
	Help:      "HTTP requests by route and status.",
}, []string{"route", "status"})

var SlowRequests = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "http_slow_requests_total",
	Help:      "HTTP requests slower than two seconds by route.",
}, []string{"route"})

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
