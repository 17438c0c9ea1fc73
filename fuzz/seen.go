// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package fuzz

import "sync"

// coverSet is the grow-only set of compressed coverage values observed so
// far. It is the only state besides the queue that workers mutate.
type coverSet[C comparable] struct {
	mu sync.Mutex
	m  map[C]struct{}
}

func newCoverSet[C comparable]() *coverSet[C] {
	return &coverSet[C]{m: make(map[C]struct{})}
}

// insert adds c and reports whether it was absent. The check and the insert
// are one atomic step: exactly one caller wins for any given value.
func (s *coverSet[C]) insert(c C) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[c]; ok {
		return false
	}
	s.m[c] = struct{}{}
	return true
}

func (s *coverSet[C]) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
