// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package metrics exposes Prometheus collectors for the event producer.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hallon-go/hallon/bridge/fatalerror"
	"github.com/hallon-go/hallon/bridge/interop"
)

var (
	producerStartsTotal     prometheus.Counter
	producerDispatchesTotal prometheus.Counter
	producerForwardedTotal  prometheus.Counter
	producerTerminalsTotal  prometheus.Counter
	producerFaultsTotal     *prometheus.CounterVec
	producerWaitSeconds     prometheus.Histogram
	sinkDepth               prometheus.Gauge
	notificationsTotal      *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		producerStartsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_producer_starts_total",
				Help: "Total number of started event producers.",
			},
		)

		producerDispatchesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_producer_dispatches_total",
				Help: "Total number of handler invocations.",
			},
		)

		producerForwardedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_producer_forwarded_events_total",
				Help: "Total number of events appended to the sink.",
			},
		)

		producerTerminalsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_producer_terminal_results_total",
				Help: "Total number of producers stopped by a terminal result.",
			},
		)

		producerFaultsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_producer_faults_total",
				Help: "Total number of producers stopped by a fault, labeled by error type.",
			},
			[]string{"error_type"},
		)

		producerWaitSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bridge_producer_event_wait_seconds",
				Help:    "Histogram of time spent waiting on event_full without the exclusivity lock.",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
			},
		)

		sinkDepth = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bridge_sink_depth",
				Help: "Number of forwarded events not drained by the consumer yet.",
			},
		)

		notificationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_notifications_total",
				Help: "Total number of callback side notifications, labeled by status.",
			},
			[]string{"status"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveNotification increments the notification counter for the given status.
func ObserveNotification(status string) {
	notificationsTotal.WithLabelValues(status).Inc()
}

// EventsAPI records producer notifications into the collectors. Init must
// have been called.
type EventsAPI struct{}

func (EventsAPI) SendProducerStart() {
	producerStartsTotal.Inc()
}

func (EventsAPI) SendEventWait(waited time.Duration) {
	producerWaitSeconds.Observe(waited.Seconds())
}

func (EventsAPI) SendDispatch() {
	producerDispatchesTotal.Inc()
}

func (EventsAPI) SendForward(interop.Event) {
	producerForwardedTotal.Inc()
	sinkDepth.Inc()
}

func (EventsAPI) SendTerminal() {
	producerTerminalsTotal.Inc()
}

func (EventsAPI) SendHandlerFault(err error) {
	producerFaultsTotal.WithLabelValues(string(fatalerror.FromError(err))).Inc()
}

func (EventsAPI) SendDrain(drained int) {
	sinkDepth.Sub(float64(drained))
}
