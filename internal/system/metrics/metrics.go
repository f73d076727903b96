/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package metrics exposes the Prometheus metrics of the server.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "formflow"

// Outcome labels of a recorded operation.
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
	OutcomeTimeout  = "timeout"
)

// Metrics holds the domain metrics of the server.
type Metrics struct {
	registry *prometheus.Registry

	FlowMutations      *prometheus.CounterVec
	FlowWriteConflicts *prometheus.CounterVec
	FunnelEvents       *prometheus.CounterVec
	AnswerEvents       prometheus.Counter
	StoreDuration      *prometheus.HistogramVec
	StoreErrors        *prometheus.CounterVec
}

var (
	instance *Metrics
	mu       sync.Mutex
)

// NewMetrics creates the metrics on a dedicated registry using the given namespace.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		FlowMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "flow",
				Name:      "mutations_total",
				Help:      "Total number of flow mutations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		FlowWriteConflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "flow",
				Name:      "write_conflicts_total",
				Help:      "Total number of stale flow writes detected by the version check",
			},
			[]string{"operation"},
		),
		FunnelEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "responses",
				Name:      "funnel_events_total",
				Help:      "Total number of recorded funnel events (view, start, complete)",
			},
			[]string{"event"},
		),
		AnswerEvents: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "responses",
				Name:      "answer_events_total",
				Help:      "Total number of appended answer events",
			},
		),
		StoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "operation_duration_seconds",
				Help:      "Store operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"store", "operation"},
		),
		StoreErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "errors_total",
				Help:      "Total number of failed store operations by kind (error, timeout)",
			},
			[]string{"store", "operation", "kind"},
		),
	}

	m.registry.MustRegister(
		m.FlowMutations,
		m.FlowWriteConflicts,
		m.FunnelEvents,
		m.AnswerEvents,
		m.StoreDuration,
		m.StoreErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// GetMetrics returns the server metrics, creating them with the default namespace on first use.
func GetMetrics() *Metrics {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = NewMetrics(defaultNamespace)
	}
	return instance
}

// Initialize creates the server metrics with the given namespace and registers the /metrics route.
func Initialize(mux *http.ServeMux, namespace string) *Metrics {
	mu.Lock()
	instance = NewMetrics(namespace)
	m := instance
	mu.Unlock()

	mux.Handle("GET /metrics", m.Handler())
	return m
}

// Handler returns the HTTP handler serving the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// RecordFlowMutation counts a flow mutation with its outcome.
func (m *Metrics) RecordFlowMutation(operation, outcome string) {
	m.FlowMutations.WithLabelValues(operation, outcome).Inc()
}

// RecordFlowWriteConflict counts a stale flow write.
func (m *Metrics) RecordFlowWriteConflict(operation string) {
	m.FlowWriteConflicts.WithLabelValues(operation).Inc()
}

// RecordFunnelEvent counts a view, start or complete event.
func (m *Metrics) RecordFunnelEvent(event string) {
	m.FunnelEvents.WithLabelValues(event).Inc()
}

// RecordAnswerEvents counts appended answer events.
func (m *Metrics) RecordAnswerEvents(count int) {
	m.AnswerEvents.Add(float64(count))
}

// ObserveStoreCall records the latency of a store call and counts it when it failed.
func (m *Metrics) ObserveStoreCall(store, operation string, start time.Time, err error) {
	m.StoreDuration.WithLabelValues(store, operation).Observe(time.Since(start).Seconds())
	if err == nil {
		return
	}
	kind := OutcomeError
	if errors.Is(err, context.DeadlineExceeded) {
		kind = OutcomeTimeout
	}
	m.StoreErrors.WithLabelValues(store, operation, kind).Inc()
}
