// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package fuzz

// minimize shrinks the entry's input to a fixpoint while preserving its
// observed behavior: a candidate replaces the current input only if its
// execution result is equivalent to the baseline (equal compressed coverage
// and detector-equal fault). The plugin controls candidate order; the first
// equivalent candidate wins and restarts the pass from the smaller input. A
// full pass with no equivalent candidate ends the loop.
func (f *Fuzzer[I, R, C]) minimize(e entry[I, C]) entry[I, C] {
	if e.res == nil {
		// Baseline computation must not pollute the queue or count the
		// entry's own coverage as a later candidate's novelty.
		res, _ := f.execute(e.input, false)
		e.res = &res
	}
	for {
		replaced := false
		for candidate := range f.cfg.Minimizer.Minimize(f.rnd, e.input) {
			// Candidates may requeue: one that is independently novel is
			// interesting in its own right even if not equivalent.
			res, _ := f.execute(candidate, true)
			if res.Coverage != e.res.Coverage || !f.cfg.Detector.EqualFaults(res.Fault, e.res.Fault) {
				continue
			}
			f.tracer.minimizationFound(e.input, candidate)
			e = entry[I, C]{input: candidate, res: &res}
			replaced = true
			break
		}
		if !replaced {
			return e
		}
	}
}
