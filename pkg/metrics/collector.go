// Package metrics exposes session lifecycle events as Prometheus metrics
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/selebrow/steward/pkg/event"
	evmodels "github.com/selebrow/steward/pkg/event/models"
)

const (
	namespace = "steward"

	resultSuccess = "success"
	resultError   = "error"
)

type Collector struct {
	requested     *prometheus.CounterVec
	attempts      prometheus.Histogram
	startDuration *prometheus.HistogramVec
	skipped       prometheus.Counter
	released      *prometheus.CounterVec
	wg            sync.WaitGroup
	l             *zap.SugaredLogger
}

func NewCollector(reg prometheus.Registerer, l *zap.Logger) *Collector {
	f := promauto.With(reg)
	return &Collector{
		requested: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_requested_total",
			Help:      "Number of browser sessions requested from the hub.",
		}, []string{"browser", "result"}),
		attempts: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_launch_attempts",
			Help:      "Number of create attempts it took to launch a session.",
			Buckets:   prometheus.LinearBuckets(1, 1, 4),
		}),
		startDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_start_duration_seconds",
			Help:      "Time spent launching a session, retries included.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}, []string{"browser"}),
		skipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_skipped_total",
			Help:      "Number of tests which did not need a browser.",
		}),
		released: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_released_total",
			Help:      "Number of browser sessions released after a test.",
		}, []string{"browser", "result"}),
		l: l.Sugar(),
	}
}

// Start consumes session events until the broker is shut down
func (c *Collector) Start(eb event.EventBroker) {
	requested := eb.Subscribe(evmodels.SessionRequestedEventType)
	skipped := eb.Subscribe(evmodels.SessionSkippedEventType)
	released := eb.Subscribe(evmodels.SessionReleasedEventType)

	c.wg.Add(3)
	go func() {
		defer c.wg.Done()
		event.Consume(requested, c.onRequested)
	}()
	go func() {
		defer c.wg.Done()
		event.Consume(skipped, c.onSkipped)
	}()
	go func() {
		defer c.wg.Done()
		event.Consume(released, c.onReleased)
	}()
}

// Wait blocks until all event channels are drained
func (c *Collector) Wait() {
	c.wg.Wait()
}

func (c *Collector) onRequested(e *evmodels.Event[evmodels.SessionRequested]) {
	a := e.Attributes
	c.requested.WithLabelValues(a.BrowserName, result(a.Error)).Inc()
	if a.Attempts > 0 {
		c.attempts.Observe(float64(a.Attempts))
	}
	c.startDuration.WithLabelValues(a.BrowserName).Observe(a.StartDuration.Seconds())
}

func (c *Collector) onSkipped(_ *evmodels.Event[evmodels.SessionSkipped]) {
	c.skipped.Inc()
}

func (c *Collector) onReleased(e *evmodels.Event[evmodels.SessionReleased]) {
	a := e.Attributes
	c.released.WithLabelValues(a.BrowserName, result(a.Error)).Inc()
	if a.Error != nil {
		c.l.With(zap.Stringer("test", a.Test)).Debugw("counted failed session release", zap.Error(a.Error))
	}
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultSuccess
}
