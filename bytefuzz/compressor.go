// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package bytefuzz provides the minimizer, mutator and coverage compressor
// plugins for fuzzing []byte inputs.
package bytefuzz

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Compressor reduces a raw coverage counter table to a uint64 digest.
// Counters are first rounded to coarse buckets so that hit-count jitter
// (say 5 vs 6 runs through a loop) does not register as new coverage,
// then the non-zero (location, bucket) pairs are hashed.
type Compressor struct{}

func (Compressor) Compress(raw []byte) uint64 {
	d := xxhash.New()
	var buf [10]byte
	for loc, count := range raw {
		if count == 0 {
			continue
		}
		n := binary.PutUvarint(buf[:], uint64(loc))
		buf[n] = bucket(count)
		d.Write(buf[:n+1])
	}
	return d.Sum64()
}

// bucket maps a hit counter to its coarse class: 0, 1, 2, 3, 4-7, 8-15,
// 16-31, 32-127, 128-255.
func bucket(count byte) byte {
	switch {
	case count < 4:
		return count
	case count < 8:
		return 4
	case count < 16:
		return 5
	case count < 32:
		return 6
	case count < 128:
		return 7
	default:
		return 8
	}
}
