// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package trace provides ready-made tracer implementations: structured
// logging, Prometheus metrics, and a fan-out combinator.
package trace

import (
	"github.com/rs/zerolog"

	"github.com/bradleyjkemp/plugfuzz/fuzz"
)

// Log emits one structured log line per notification. Inputs are logged
// with %v semantics; keep tracer-facing input types printable.
type Log[I, R any] struct {
	Logger zerolog.Logger
	RunID  string
}

func (l *Log[I, R]) line(level zerolog.Level) *zerolog.Event {
	ev := l.Logger.WithLevel(level)
	if l.RunID != "" {
		ev = ev.Str("run_id", l.RunID)
	}
	return ev
}

func (l *Log[I, R]) InputsEnqueued(inputs []I) {
	l.line(zerolog.DebugLevel).Int("count", len(inputs)).Msg("inputs enqueued")
}

func (l *Log[I, R]) InputDequeued(input I) {
	l.line(zerolog.DebugLevel).Interface("input", input).Msg("input dequeued")
}

func (l *Log[I, R]) InputFaulted(input I, fault fuzz.FaultResult) {
	l.line(zerolog.WarnLevel).Interface("input", input).Msg("input faulted")
}

func (l *Log[I, R]) InputFuzzed(input I, raw R) {
	l.line(zerolog.TraceLevel).Interface("input", input).Msg("input fuzzed")
}

func (l *Log[I, R]) MinimizationFound(from, to I) {
	l.line(zerolog.InfoLevel).
		Interface("from", from).
		Interface("to", to).
		Msg("minimization found")
}

func (l *Log[I, R]) MutationFound(from, to I) {
	l.line(zerolog.InfoLevel).
		Interface("from", from).
		Interface("to", to).
		Msg("mutation found")
}

func (l *Log[I, R]) FuzzerFinished() {
	l.line(zerolog.InfoLevel).Msg("fuzzer finished")
}
