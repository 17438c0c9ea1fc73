// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package fuzz

import (
	"iter"
	"math/rand"
)

// TargetInfo is an opaque handle identifying one run of the target.
// It is produced by Executor.Initialize and is valid only for the
// coverage/fault calls of the same pipeline pass; it must not be retained.
type TargetInfo = any

// Executor knows how to prepare the system under test for one input.
// The actual execution is driven by the FaultDetector, which receives
// both the executor and the TargetInfo.
type Executor[I any] interface {
	// GlobalInit is called exactly once, before any coverage is captured,
	// so that process setup is not misattributed as covered target code.
	GlobalInit()

	// Initialize prepares one run for input and returns a handle for it.
	Initialize(input I) TargetInfo
}

// CoverageReader captures the raw coverage produced by one target run.
type CoverageReader[R any] interface {
	Clear(info TargetInfo)
	Read(info TargetInfo) R
}

// Compressor reduces raw coverage to a compact, comparable encoding.
// Compress must be deterministic: equal raw coverage must always compress
// to equal values, or novelty detection is undefined.
type Compressor[R any, C comparable] interface {
	Compress(raw R) C
}

// FaultResult describes the outcome of one target run.
type FaultResult struct {
	Faulted bool
	Detail  any // detector-specific; e.g. crash output and suppression
}

// FaultDetector drives the execution of the target under the executor and
// reports whether it faulted. EqualFaults is the equality policy used by
// minimization: it may treat two faults with differing diagnostic detail
// as the same kind of crash.
type FaultDetector[I any] interface {
	Detect(ex Executor[I], info TargetInfo) FaultResult
	EqualFaults(a, b FaultResult) bool
}

// Minimizer enumerates candidate reduced inputs derived from input.
// The sequence must be finite; the driver pulls it lazily and may abandon
// it after the first equivalent candidate.
type Minimizer[I any] interface {
	Minimize(rnd *rand.Rand, input I) iter.Seq[I]
}

// Mutator enumerates mutated inputs derived from input.
// The sequence must be finite; it is always fully drained.
type Mutator[I any] interface {
	Mutate(rnd *rand.Rand, input I) iter.Seq[I]
}

// ExecutionResult is the summary of one execution used for novelty and
// equivalence checks. Once attached to a queue entry it is never mutated.
type ExecutionResult[C comparable] struct {
	Coverage C
	Fault    FaultResult
}

type entry[I any, C comparable] struct {
	input I
	res   *ExecutionResult[C]
}
