// Package server exposes Prometheus metrics for long-running vecops modes
// (batch and REPL). One-shot invocations do not serve metrics; they exit
// before any scraper could observe them.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	vecops "github.com/KaiCodesWithGithub/vector-operations"
	"github.com/KaiCodesWithGithub/vector-operations/internal/logging"
)

// Metrics bundles the vecops Prometheus collectors behind a private registry,
// so repeated construction (as in tests) never trips duplicate registration.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	operationsTotal    *prometheus.CounterVec
	shapeMismatchTotal prometheus.Counter
	overflowTotal      prometheus.Counter
	duration           *prometheus.HistogramVec
}

// NewMetrics creates the collector set on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		operationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vecops",
			Name:      "operations_total",
			Help:      "Total operations evaluated, by operation and outcome.",
		}, []string{"op", "outcome"}),
		shapeMismatchTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "vecops",
			Name:      "shape_mismatch_total",
			Help:      "Operations rejected because of incompatible operand dimensions.",
		}),
		overflowTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "vecops",
			Name:      "overflow_total",
			Help:      "Operations rejected because of int64 overflow.",
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vecops",
			Name:      "operation_duration_seconds",
			Help:      "Evaluation latency by operation.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
		}, []string{"op"}),
	}
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// RecordOperation accounts one evaluation: outcome classification plus
// latency on success.
func (m *Metrics) RecordOperation(op string, d time.Duration, err error) {
	outcome := "ok"
	switch {
	case err == nil:
		m.duration.WithLabelValues(op).Observe(d.Seconds())
	case isShapeMismatch(err):
		outcome = "shape_mismatch"
		m.shapeMismatchTotal.Inc()
	case isOverflow(err):
		outcome = "overflow"
		m.overflowTotal.Inc()
	default:
		outcome = "error"
	}
	m.operationsTotal.WithLabelValues(op, outcome).Inc()
}

func isShapeMismatch(err error) bool {
	var shapeErr vecops.ShapeMismatchError
	return errors.As(err, &shapeErr)
}

func isOverflow(err error) bool {
	var overflowErr vecops.OverflowError
	return errors.As(err, &overflowErr)
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler { return m.handler }

// Serve exposes /metrics on addr until ctx is canceled. Serve errors other
// than graceful shutdown are logged, never fatal: metrics are best-effort
// observability next to the actual work.
func (m *Metrics) Serve(ctx context.Context, addr string, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.handler)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving metrics", logging.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server failed", err, logging.String("addr", addr))
	}
}
