// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package fuzz

import "sync"

// workQueue is an unbounded FIFO of pending entries, safe for concurrent use.
type workQueue[I any, C comparable] struct {
	mu      sync.Mutex
	entries []entry[I, C]
}

func (q *workQueue[I, C]) enqueue(e entry[I, C]) {
	q.mu.Lock()
	q.entries = append(q.entries, e)
	q.mu.Unlock()
}

func (q *workQueue[I, C]) tryDequeue() (entry[I, C], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return entry[I, C]{}, false
	}
	e := q.entries[0]
	q.entries[0] = entry[I, C]{}
	q.entries = q.entries[1:]
	return e, true
}

func (q *workQueue[I, C]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
