// Package metrics instruments state machines with Prometheus collectors.
//
// Instrument wraps anything with a Step method, so the same decorator works
// for graphfsm.Machine and graphfsm.WalkingSelector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Step results used as the "result" label.
const (
	ResultMatched   = "matched"
	ResultUnmatched = "unmatched"
)

// Stepper is the step surface shared by machines and walking selectors.
type Stepper[I, A, NW any] interface {
	Step(input I) (A, NW, bool)
}

// Collector holds the step metrics. One collector serves many machines,
// separated by the "machine" label.
type Collector struct {
	steps       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	transitions *prometheus.CounterVec
}

// NewCollector registers the step metrics with reg. A nil reg registers
// nothing, which keeps collectors usable in tests.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		// steps counts Step calls.
		// Labels: machine, result (matched, unmatched)
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graphfsm",
			Name:      "steps_total",
			Help:      "Total Step calls by result",
		}, []string{"machine", "result"}),

		// duration measures the first-match scan.
		// Labels: machine
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "graphfsm",
			Name:      "step_duration_seconds",
			Help:      "Step latency in seconds",
			Buckets:   []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3},
		}, []string{"machine"}),

		// transitions counts arrivals per target state.
		// Labels: machine, state
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graphfsm",
			Name:      "transitions_total",
			Help:      "Total transitions by target state",
		}, []string{"machine", "state"}),
	}
}

// Instrumented decorates a Stepper with metrics. It adds no locking of its
// own, so it is as safe for concurrent use as the stepper it wraps.
type Instrumented[I, A, NW any] struct {
	next      Stepper[I, A, NW]
	machine   string
	collector *Collector
}

// Instrument wraps s so every Step is recorded under the given machine name.
func Instrument[I, A, NW any](machine string, s Stepper[I, A, NW], c *Collector) *Instrumented[I, A, NW] {
	return &Instrumented[I, A, NW]{next: s, machine: machine, collector: c}
}

// Step delegates to the wrapped stepper and records the outcome. Results
// are recorded as the stepper reports them: a machine that moves onto a
// node without a weight reports false, so the step counts as unmatched and
// no transition is recorded.
func (m *Instrumented[I, A, NW]) Step(input I) (A, NW, bool) {
	start := time.Now()
	action, state, ok := m.next.Step(input)
	m.collector.duration.WithLabelValues(m.machine).Observe(time.Since(start).Seconds())

	if !ok {
		m.collector.steps.WithLabelValues(m.machine, ResultUnmatched).Inc()
		return action, state, ok
	}
	m.collector.steps.WithLabelValues(m.machine, ResultMatched).Inc()
	m.collector.transitions.WithLabelValues(m.machine, fmt.Sprint(state)).Inc()
	return action, state, ok
}

// Unwrap returns the decorated stepper.
func (m *Instrumented[I, A, NW]) Unwrap() Stepper[I, A, NW] {
	return m.next
}
