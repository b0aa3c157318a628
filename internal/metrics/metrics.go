package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess    = "success"
	ResultParseError = "parse_error"
	ResultEmpty      = "empty"
	ResultError      = "error"
)

var (
	// Pipeline metrics
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productivity_analyses_total",
			Help: "Total number of task logs analysed, by result",
		},
		[]string{"result"},
	)

	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "productivity_analysis_duration_seconds",
			Help:    "Time spent parsing and aggregating a task log",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	TasksProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productivity_tasks_processed_total",
			Help: "Total number of task records categorised, by category",
		},
		[]string{"category"},
	)

	// HTTP metrics
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productivity_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "productivity_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ReportsRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productivity_reports_rendered_total",
			Help: "Total number of rendered artifacts, by kind",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		AnalysesTotal,
		AnalysisDuration,
		TasksProcessed,
		RequestsTotal,
		RequestDuration,
		ReportsRendered,
	)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
