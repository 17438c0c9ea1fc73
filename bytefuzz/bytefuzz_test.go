// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package bytefuzz

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(seq func(yield func([]byte) bool)) [][]byte {
	var out [][]byte
	seq(func(c []byte) bool {
		out = append(out, c)
		return true
	})
	return out
}

func TestMinimizerCandidatesAreReductions(t *testing.T) {
	data := []byte("hello world")
	candidates := collect(Minimizer{}.Minimize(nil, data))
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.Less(t, len(c), len(data))
	}
}

func TestMinimizerCanonicalize(t *testing.T) {
	data := []byte("ab")
	candidates := collect(Minimizer{Canonicalize: true}.Minimize(nil, data))
	for _, c := range candidates {
		if len(c) == len(data) {
			assert.Contains(t, string(c), "0")
		}
	}
	// '0' bytes are already canonical and yield no candidate.
	all := collect(Minimizer{Canonicalize: true}.Minimize(nil, []byte("00")))
	for _, c := range all {
		assert.Less(t, len(c), 2)
	}
}

func TestMinimizerTailCutsFirst(t *testing.T) {
	data := bytes.Repeat([]byte{'x'}, 2000)
	var first []byte
	Minimizer{}.Minimize(nil, data)(func(c []byte) bool {
		first = c
		return false
	})
	require.NotNil(t, first)
	assert.Equal(t, len(data)-1024, len(first))
}

func TestMinimizerEmptyInput(t *testing.T) {
	assert.Empty(t, collect(Minimizer{}.Minimize(nil, nil)))
}

func TestMutatorFiniteAndBounded(t *testing.T) {
	m := &Mutator{Mutants: 25}
	rnd := rand.New(rand.NewSource(1))
	mutants := collect(m.Mutate(rnd, []byte("seed")))
	assert.Len(t, mutants, 25)
	for _, mut := range mutants {
		assert.LessOrEqual(t, len(mut), maxInputSize)
	}
}

func TestMutatorDeterministicForSeed(t *testing.T) {
	m := &Mutator{Dict: [][]byte{[]byte("MAGIC")}}
	a := collect(m.Mutate(rand.New(rand.NewSource(7)), []byte("seed")))
	b := collect(m.Mutate(rand.New(rand.NewSource(7)), []byte("seed")))
	assert.Equal(t, a, b)
}

func TestMutatorDoesNotAliasInput(t *testing.T) {
	input := []byte("aaaaaaaa")
	orig := append([]byte(nil), input...)
	m := &Mutator{Mutants: 50}
	collect(m.Mutate(rand.New(rand.NewSource(3)), input))
	assert.Equal(t, orig, input)
}

func TestMutatorGrowsFromEmpty(t *testing.T) {
	m := &Mutator{Mutants: 10}
	mutants := collect(m.Mutate(rand.New(rand.NewSource(5)), nil))
	assert.Len(t, mutants, 10)
}

func TestCompressorDeterministic(t *testing.T) {
	raw := []byte{0, 1, 0, 5, 200}
	assert.Equal(t, Compressor{}.Compress(raw), Compressor{}.Compress(raw))
}

func TestCompressorBuckets(t *testing.T) {
	base := make([]byte, 16)
	a := make([]byte, 16)
	b := make([]byte, 16)

	// 4 and 7 land in the same bucket: hit-count jitter is not novelty.
	a[3], b[3] = 4, 7
	assert.Equal(t, Compressor{}.Compress(a), Compressor{}.Compress(b))

	// 3 and 4 are different buckets.
	b[3] = 3
	assert.NotEqual(t, Compressor{}.Compress(a), Compressor{}.Compress(b))

	// A newly hit location is novel.
	assert.NotEqual(t, Compressor{}.Compress(base), Compressor{}.Compress(a))

	// The same counter at a different location is novel.
	c := make([]byte, 16)
	c[4] = 4
	assert.NotEqual(t, Compressor{}.Compress(a), Compressor{}.Compress(c))
}
