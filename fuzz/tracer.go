// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package fuzz

import "sync"

// Tracer receives observability callbacks from the fuzzer. Callbacks are
// serialized: a tracer never sees two calls concurrently, and across workers
// the calls form a strict total order (which order is unspecified beyond
// per-call atomicity). Tracers run under the serialization lock and so must
// not block indefinitely.
type Tracer[I, R any] interface {
	InputsEnqueued(inputs []I)
	InputDequeued(input I)
	InputFaulted(input I, fault FaultResult)
	InputFuzzed(input I, raw R)
	MinimizationFound(from, to I)
	MutationFound(from, to I)
	FuzzerFinished()
}

// NopTracer ignores all notifications.
type NopTracer[I, R any] struct{}

func (NopTracer[I, R]) InputsEnqueued([]I)           {}
func (NopTracer[I, R]) InputDequeued(I)              {}
func (NopTracer[I, R]) InputFaulted(I, FaultResult)  {}
func (NopTracer[I, R]) InputFuzzed(I, R)             {}
func (NopTracer[I, R]) MinimizationFound(I, I)       {}
func (NopTracer[I, R]) MutationFound(I, I)           {}
func (NopTracer[I, R]) FuzzerFinished()              {}

// tracerGate funnels every worker's notifications through one mutex so they
// reach the user's tracer one at a time.
type tracerGate[I, R any] struct {
	mu sync.Mutex
	t  Tracer[I, R]
}

func (g *tracerGate[I, R]) inputsEnqueued(inputs []I) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.t.InputsEnqueued(inputs)
}

func (g *tracerGate[I, R]) inputDequeued(input I) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.t.InputDequeued(input)
}

func (g *tracerGate[I, R]) inputFaulted(input I, fault FaultResult) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.t.InputFaulted(input, fault)
}

func (g *tracerGate[I, R]) inputFuzzed(input I, raw R) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.t.InputFuzzed(input, raw)
}

func (g *tracerGate[I, R]) minimizationFound(from, to I) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.t.MinimizationFound(from, to)
}

func (g *tracerGate[I, R]) mutationFound(from, to I) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.t.MutationFound(from, to)
}

func (g *tracerGate[I, R]) fuzzerFinished() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.t.FuzzerFinished()
}
