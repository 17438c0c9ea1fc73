// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package fuzz implements a coverage-guided fuzzing loop that is generic
// over the input type, the raw coverage type, and the compressed coverage
// type. The target, coverage capture, fault detection, minimization and
// mutation strategies are all supplied as plugins; the package owns only
// the feedback algorithm: the work queue, novelty detection over compressed
// coverage, the minimize/mutate drivers and the dispatch loop.
package fuzz

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

const defaultPollInterval = 10 * time.Millisecond

// Config assembles the collaborators of one fuzzing run.
type Config[I, R any, C comparable] struct {
	Executor   Executor[I]
	Coverage   CoverageReader[R]
	Compressor Compressor[R, C]
	Detector   FaultDetector[I]
	Minimizer  Minimizer[I]
	Mutator    Mutator[I]

	// Tracer receives serialized observability callbacks. Nil means no-op.
	Tracer Tracer[I, R]

	// Parallelism bounds concurrent entry processing. 1 processes entries
	// inline on the loop goroutine and is fully deterministic for a fixed
	// Seed. 0 dispatches without an admission limit. N>1 caps in-flight
	// entries at N.
	Parallelism int

	// Seed for the shared random generator handed to minimizer and mutator
	// plugins. Plugins must draw via the generator's numeric methods; the
	// generator's Read is not safe for shared use.
	Seed int64

	// PollInterval is how long the loop backs off when the queue is empty.
	PollInterval time.Duration
}

// Fuzzer runs the feedback loop. Construct with New, seed the queue with
// Enqueue/EnqueueRange, then call Run.
type Fuzzer[I, R any, C comparable] struct {
	cfg      Config[I, R, C]
	queue    workQueue[I, C]
	seen     *coverSet[C]
	tracer   *tracerGate[I, R]
	rnd      *rand.Rand
	sem      *semaphore.Weighted
	initOnce sync.Once
	poll     time.Duration
}

// New validates cfg and returns a ready fuzzer. Configuration problems are
// reported here, before the loop starts.
func New[I, R any, C comparable](cfg Config[I, R, C]) (*Fuzzer[I, R, C], error) {
	switch {
	case cfg.Executor == nil:
		return nil, errors.New("fuzz: config needs an Executor")
	case cfg.Coverage == nil:
		return nil, errors.New("fuzz: config needs a CoverageReader")
	case cfg.Compressor == nil:
		return nil, errors.New("fuzz: config needs a Compressor")
	case cfg.Detector == nil:
		return nil, errors.New("fuzz: config needs a FaultDetector")
	case cfg.Minimizer == nil:
		return nil, errors.New("fuzz: config needs a Minimizer")
	case cfg.Mutator == nil:
		return nil, errors.New("fuzz: config needs a Mutator")
	case cfg.Parallelism < 0:
		return nil, errors.New("fuzz: Parallelism must be >= 0")
	}
	if cfg.Tracer == nil {
		cfg.Tracer = NopTracer[I, R]{}
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	f := &Fuzzer[I, R, C]{
		cfg:    cfg,
		seen:   newCoverSet[C](),
		tracer: &tracerGate[I, R]{t: cfg.Tracer},
		rnd:    newRand(cfg.Seed),
		poll:   poll,
	}
	if cfg.Parallelism > 1 {
		f.sem = semaphore.NewWeighted(int64(cfg.Parallelism))
	}
	return f, nil
}

// Enqueue adds one input to the work queue. Its execution result is
// computed lazily when the entry is processed.
func (f *Fuzzer[I, R, C]) Enqueue(input I) {
	f.queue.enqueue(entry[I, C]{input: input})
	f.tracer.inputsEnqueued([]I{input})
}

// EnqueueRange adds a batch of inputs to the work queue.
func (f *Fuzzer[I, R, C]) EnqueueRange(inputs []I) {
	if len(inputs) == 0 {
		return
	}
	for _, input := range inputs {
		f.queue.enqueue(entry[I, C]{input: input})
	}
	f.tracer.inputsEnqueued(inputs)
}

// Run drives the loop until ctx is cancelled. The queue can always receive
// more work, so termination is caller-driven; Run otherwise blocks forever.
// On cancellation the tracer's FuzzerFinished fires exactly once. Work
// already dispatched to workers is not awaited before that notification;
// callers needing a full drain must track completion themselves.
func (f *Fuzzer[I, R, C]) Run(ctx context.Context) {
	f.initOnce.Do(f.cfg.Executor.GlobalInit)
	for ctx.Err() == nil {
		e, ok := f.queue.tryDequeue()
		if !ok {
			select {
			case <-ctx.Done():
			case <-time.After(f.poll):
			}
			continue
		}
		f.tracer.inputDequeued(e.input)
		switch {
		case f.cfg.Parallelism == 1:
			f.process(e)
		case f.sem != nil:
			go func() {
				if f.sem.Acquire(ctx, 1) != nil {
					return // cancelled while waiting for a slot
				}
				defer f.sem.Release(1)
				f.process(e)
			}()
		default:
			go f.process(e)
		}
	}
	f.tracer.fuzzerFinished()
}

// process handles one dequeued entry: minimize it, then mutate the
// minimized form unless its baseline execution faulted. Faulted entries are
// terminal for this run.
func (f *Fuzzer[I, R, C]) process(e entry[I, C]) {
	e = f.minimize(e)
	if e.res.Fault.Faulted {
		return
	}
	f.mutate(e)
}

// SeenCoverage reports how many distinct compressed coverage values have
// been observed so far.
func (f *Fuzzer[I, R, C]) SeenCoverage() int {
	return f.seen.size()
}

// QueueLen reports how many entries are waiting to be processed.
func (f *Fuzzer[I, R, C]) QueueLen() int {
	return f.queue.len()
}
