// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package bytefuzz

import (
	"iter"
	"math/rand"
)

const (
	defaultMutants = 100
	maxInputSize   = 1 << 20
)

// Mutator derives random edits of a []byte input. Each call to Mutate
// yields a bounded number of mutants, each built by applying 1-4 edit
// operations to a copy of the input.
type Mutator struct {
	// Dict holds literals (magic numbers, keywords) spliced into mutants.
	Dict [][]byte

	// Mutants is how many derived inputs one Mutate call yields.
	// Zero means a default of 100.
	Mutants int
}

func (m *Mutator) Mutate(rnd *rand.Rand, data []byte) iter.Seq[[]byte] {
	n := m.Mutants
	if n <= 0 {
		n = defaultMutants
	}
	return func(yield func([]byte) bool) {
		for i := 0; i < n; i++ {
			if !yield(m.mutate(rnd, data)) {
				return
			}
		}
	}
}

func (m *Mutator) mutate(rnd *rand.Rand, data []byte) []byte {
	res := makeCopy(data)
	steps := 1 + rnd.Intn(4)
	for step := 0; step < steps; step++ {
		if len(res) == 0 {
			res = append(res, byte(rnd.Intn(256)))
		}
		switch rnd.Intn(7) {
		case 0: // flip a bit
			pos := rnd.Intn(len(res))
			res[pos] ^= 1 << uint(rnd.Intn(8))
		case 1: // overwrite a range with random bytes
			pos := rnd.Intn(len(res))
			end := pos + 1 + rnd.Intn(16)
			if end > len(res) {
				end = len(res)
			}
			for i := pos; i < end; i++ {
				res[i] = byte(rnd.Intn(256))
			}
		case 2: // truncate
			res = res[:rnd.Intn(len(res)+1)]
		case 3: // append random bytes
			add := 1 + rnd.Intn(16)
			for i := 0; i < add; i++ {
				res = append(res, byte(rnd.Intn(256)))
			}
		case 4: // insert a short random run
			pos := rnd.Intn(len(res) + 1)
			add := 1 + rnd.Intn(16)
			run := make([]byte, add)
			for i := range run {
				run[i] = byte(rnd.Intn(256))
			}
			res = append(res[:pos], append(run, res[pos:]...)...)
		case 5: // duplicate a range elsewhere
			if len(res) < 2 {
				continue
			}
			from := rnd.Intn(len(res))
			end := from + 1 + rnd.Intn(16)
			if end > len(res) {
				end = len(res)
			}
			chunk := makeCopy(res[from:end])
			to := rnd.Intn(len(res) + 1)
			res = append(res[:to], append(chunk, res[to:]...)...)
		case 6: // splice a dictionary literal
			if len(m.Dict) == 0 {
				continue
			}
			lit := m.Dict[rnd.Intn(len(m.Dict))]
			pos := rnd.Intn(len(res) + 1)
			res = append(res[:pos], append(makeCopy(lit), res[pos:]...)...)
		}
		if len(res) > maxInputSize {
			res = res[:maxInputSize]
		}
	}
	return res
}
