// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package trace

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bradleyjkemp/plugfuzz/fuzz"
)

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	l := &Log[string, []int]{
		Logger: zerolog.New(&buf).Level(zerolog.DebugLevel),
		RunID:  "run-1",
	}

	l.InputsEnqueued([]string{"a", "b"})
	l.MinimizationFound("abc", "a")
	l.FuzzerFinished()

	out := buf.String()
	assert.Contains(t, out, "inputs enqueued")
	assert.Contains(t, out, `"count":2`)
	assert.Contains(t, out, "minimization found")
	assert.Contains(t, out, "fuzzer finished")
	assert.Contains(t, out, "run-1")
}

func TestMetricsTracer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics[string, []int](reg)

	m.InputsEnqueued([]string{"a", "b", "c"})
	m.InputDequeued("a")
	m.InputFuzzed("a", []int{1})
	m.InputFuzzed("b", []int{2})
	m.InputFaulted("a", fuzz.FaultResult{Faulted: true})
	m.MinimizationFound("a", "")
	m.MutationFound("", "b")
	m.FuzzerFinished()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.enqueued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dequeued))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.execs))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.faults))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.minimizations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations))
}

func TestMultiFansOut(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics[string, []int](reg)
	var buf bytes.Buffer
	l := &Log[string, []int]{Logger: zerolog.New(&buf)}

	tr := Multi[string, []int](l, m)
	tr.MutationFound("a", "b")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations))
	assert.Contains(t, buf.String(), "mutation found")
}

var _ fuzz.Tracer[string, []int] = (*Log[string, []int])(nil)
var _ fuzz.Tracer[string, []int] = (*Metrics[string, []int])(nil)
