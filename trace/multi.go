// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package trace

import "github.com/bradleyjkemp/plugfuzz/fuzz"

// Multi fans each notification out to every tracer in order.
func Multi[I, R any](tracers ...fuzz.Tracer[I, R]) fuzz.Tracer[I, R] {
	return multi[I, R](tracers)
}

type multi[I, R any] []fuzz.Tracer[I, R]

func (m multi[I, R]) InputsEnqueued(inputs []I) {
	for _, t := range m {
		t.InputsEnqueued(inputs)
	}
}

func (m multi[I, R]) InputDequeued(input I) {
	for _, t := range m {
		t.InputDequeued(input)
	}
}

func (m multi[I, R]) InputFaulted(input I, fault fuzz.FaultResult) {
	for _, t := range m {
		t.InputFaulted(input, fault)
	}
}

func (m multi[I, R]) InputFuzzed(input I, raw R) {
	for _, t := range m {
		t.InputFuzzed(input, raw)
	}
}

func (m multi[I, R]) MinimizationFound(from, to I) {
	for _, t := range m {
		t.MinimizationFound(from, to)
	}
}

func (m multi[I, R]) MutationFound(from, to I) {
	for _, t := range m {
		t.MutationFound(from, to)
	}
}

func (m multi[I, R]) FuzzerFinished() {
	for _, t := range m {
		t.FuzzerFinished()
	}
}
