// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package corpus

import (
	"github.com/rs/zerolog"

	"github.com/bradleyjkemp/plugfuzz/fuzz"
	"github.com/bradleyjkemp/plugfuzz/target"
)

// Saver is a tracer that persists the run's discoveries: every enqueued
// input goes into the corpus and every fault becomes a crasher artifact.
// Storage errors are logged, not fatal; losing one artifact should not
// stop the run.
type Saver[R any] struct {
	Store *Store
	Log   zerolog.Logger
}

func (s *Saver[R]) InputsEnqueued(inputs [][]byte) {
	for _, input := range inputs {
		if err := s.Store.AddInput(input); err != nil {
			s.Log.Warn().Err(err).Msg("failed to save corpus input")
		}
	}
}

func (s *Saver[R]) InputFaulted(input []byte, fault fuzz.FaultResult) {
	output := []byte("fault")
	if crash, ok := fault.Detail.(target.Crash); ok {
		output = crash.Output
	}
	if err := s.Store.AddCrasher(input, output); err != nil {
		s.Log.Warn().Err(err).Msg("failed to save crasher")
	}
}

func (s *Saver[R]) InputDequeued([]byte)       {}
func (s *Saver[R]) InputFuzzed([]byte, R)      {}
func (s *Saver[R]) MinimizationFound(_, _ []byte) {}
func (s *Saver[R]) MutationFound(_, _ []byte)  {}
func (s *Saver[R]) FuzzerFinished()            {}
