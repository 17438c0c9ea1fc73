// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package covertab holds the shared coverage table written by instrumented
// in-process targets.
package covertab

const (
	Size         = 64 << 10
	MaxInputSize = 1 << 20
)

// Tab holds code coverage counters. It is initialized to a new array so
// that instrumentation executed during process initialization has somewhere
// to write to. It is replaced by a freshly allocated array when actual
// fuzzing commences, so setup coverage is discarded.
var Tab = new([Size]byte)

// PrevLoc stores the id of the previous coverage point. Instrumented code
// combines it with the current id to pick the Tab entry to increment, which
// gives a cheap approximation of path coverage instead of plain line
// coverage.
var PrevLoc int

// Reset zeroes the current table in place.
func Reset() {
	*Tab = [Size]byte{}
}

// Snapshot copies the current table out of shared memory.
func Snapshot() []byte {
	c := make([]byte, Size)
	copy(c, Tab[:])
	return c
}
