package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/algoviz/step"
)

var (
	// tracesTotal counts generated traces by family and variant.
	tracesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoviz_traces_total",
		Help: "Total traces generated by family and variant",
	}, []string{"family", "variant"})

	// traceSteps tracks the length of each generated trace.
	traceSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "algoviz_trace_steps",
		Help:    "Number of steps per generated trace",
		Buckets: prometheus.ExponentialBuckets(1, 4, 9), // 1 to ~65k
	})

	// stepsTotal counts recorded steps by kind, fed by the recorder observer.
	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoviz_steps_total",
		Help: "Total recorded steps by kind",
	}, []string{"kind"})

	// requestErrors counts rejected requests by error code.
	requestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoviz_request_errors_total",
		Help: "Total rejected requests by error code",
	}, []string{"code"})

	// requestDuration tracks handler latency by route and status.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algoviz_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"route", "status"})
)

// countStep is the recorder observer that feeds stepsTotal.
func countStep(s step.Step) {
	stepsTotal.WithLabelValues(string(s.Kind)).Inc()
}
