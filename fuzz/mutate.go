// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package fuzz

// mutate derives new inputs from the entry and feeds novel ones back into
// the queue via the pipeline. The plugin's sequence is fully drained;
// exploration does not stop at the first interesting mutant. The caller
// guarantees the entry's baseline is not faulted.
func (f *Fuzzer[I, R, C]) mutate(e entry[I, C]) {
	for mutant := range f.cfg.Mutator.Mutate(f.rnd, e.input) {
		if _, novel := f.execute(mutant, true); novel {
			f.tracer.mutationFound(e.input, mutant)
		}
	}
}
