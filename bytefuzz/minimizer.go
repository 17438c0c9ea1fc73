// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package bytefuzz

import (
	"iter"
	"math/rand"
)

// Minimizer enumerates reduced candidates for a []byte input, cheapest
// reductions first: cut the tail in halving chunks, drop single bytes, drop
// byte ranges, and finally canonicalize bytes to '0'. The driver restarts
// the sequence from whichever candidate it accepts, so each pass only needs
// to propose single-step reductions of the current input.
type Minimizer struct {
	// Canonicalize also proposes copies with one byte replaced by '0'.
	// Useful when minimizing crashers, where the shape of the input matters
	// more than its exact contents.
	Canonicalize bool
}

func (m Minimizer) Minimize(_ *rand.Rand, data []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		// Try to cut the tail.
		for n := 1024; n != 0; n /= 2 {
			if len(data) > n {
				if !yield(makeCopy(data[:len(data)-n])) {
					return
				}
			}
		}

		// Try to remove each individual byte.
		for i := 0; i < len(data); i++ {
			candidate := make([]byte, len(data)-1)
			copy(candidate[:i], data[:i])
			copy(candidate[i:], data[i+1:])
			if !yield(candidate) {
				return
			}
		}

		// Try to remove each possible range of bytes.
		for i := 0; i < len(data)-1; i++ {
			for j := len(data); j > i+1; j-- {
				candidate := make([]byte, len(data)-j+i)
				copy(candidate[:i], data[:i])
				copy(candidate[i:], data[j:])
				if !yield(candidate) {
					return
				}
			}
		}

		// Try to replace each individual byte with '0'.
		if m.Canonicalize {
			for i := 0; i < len(data); i++ {
				if data[i] == '0' {
					continue
				}
				candidate := makeCopy(data)
				candidate[i] = '0'
				if !yield(candidate) {
					return
				}
			}
		}
	}
}

func makeCopy(data []byte) []byte {
	return append([]byte{}, data...)
}
