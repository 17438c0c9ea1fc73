// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package trace

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bradleyjkemp/plugfuzz/fuzz"
)

// Metrics counts notifications as Prometheus counters.
type Metrics[I, R any] struct {
	enqueued      prometheus.Counter
	dequeued      prometheus.Counter
	faults        prometheus.Counter
	execs         prometheus.Counter
	minimizations prometheus.Counter
	mutations     prometheus.Counter
}

// NewMetrics registers the fuzzer counters with reg.
func NewMetrics[I, R any](reg prometheus.Registerer) *Metrics[I, R] {
	m := &Metrics[I, R]{
		enqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugfuzz_inputs_enqueued_total",
			Help: "Inputs added to the work queue.",
		}),
		dequeued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugfuzz_inputs_dequeued_total",
			Help: "Entries pulled off the work queue.",
		}),
		faults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugfuzz_faults_total",
			Help: "Executions reported as faulted.",
		}),
		execs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugfuzz_executions_total",
			Help: "Target executions.",
		}),
		minimizations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugfuzz_minimizations_total",
			Help: "Accepted minimization steps.",
		}),
		mutations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugfuzz_novel_mutations_total",
			Help: "Mutations that produced novel coverage.",
		}),
	}
	reg.MustRegister(m.enqueued, m.dequeued, m.faults, m.execs, m.minimizations, m.mutations)
	return m
}

func (m *Metrics[I, R]) InputsEnqueued(inputs []I) { m.enqueued.Add(float64(len(inputs))) }
func (m *Metrics[I, R]) InputDequeued(I)           { m.dequeued.Inc() }

func (m *Metrics[I, R]) InputFaulted(I, fuzz.FaultResult) { m.faults.Inc() }
func (m *Metrics[I, R]) InputFuzzed(I, R)                 { m.execs.Inc() }
func (m *Metrics[I, R]) MinimizationFound(_, _ I)         { m.minimizations.Inc() }
func (m *Metrics[I, R]) MutationFound(_, _ I)             { m.mutations.Inc() }
func (m *Metrics[I, R]) FuzzerFinished()                  {}
