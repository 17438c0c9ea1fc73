// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package fuzz

// execute runs input through the target once and classifies the outcome.
// This is the only place coverage is read, compressed or checked for
// novelty, so the minimizer and mutator share one definition of
// "interesting". When requeueOnNovelty is set, a novel result puts a new
// entry carrying its execution result back on the queue.
func (f *Fuzzer[I, R, C]) execute(input I, requeueOnNovelty bool) (ExecutionResult[C], bool) {
	info := f.cfg.Executor.Initialize(input)
	f.cfg.Coverage.Clear(info)
	fault := f.cfg.Detector.Detect(f.cfg.Executor, info)
	if fault.Faulted {
		f.tracer.inputFaulted(input, fault)
	}
	raw := f.cfg.Coverage.Read(info)
	f.tracer.inputFuzzed(input, raw)
	res := ExecutionResult[C]{
		Coverage: f.cfg.Compressor.Compress(raw),
		Fault:    fault,
	}
	novel := f.seen.insert(res.Coverage)
	if requeueOnNovelty && novel {
		f.queue.enqueue(entry[I, C]{input: input, res: &res})
		f.tracer.inputsEnqueued([]I{input})
	}
	return res, novel
}
