// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package corpus persists fuzzing work data: the input corpus and crasher
// artifacts, stored as plain files named by content hash under a workdir.
package corpus

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Sig is the identity of an input, the sha1 of its bytes.
type Sig [sha1.Size]byte

func hashData(data []byte) Sig {
	return sha1.Sum(data)
}

func (s Sig) String() string {
	return hex.EncodeToString(s[:])
}

// Store is the on-disk corpus. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	corpus   string
	crashers string
	sigs     map[Sig]struct{}
	crashed  map[Sig]struct{}
	inputs   [][]byte
}

// Open loads the corpus under workdir, creating the layout if needed.
func Open(workdir string) (*Store, error) {
	s := &Store{
		corpus:   filepath.Join(workdir, "corpus"),
		crashers: filepath.Join(workdir, "crashers"),
		sigs:     make(map[Sig]struct{}),
		crashed:  make(map[Sig]struct{}),
	}
	for _, dir := range []string{s.corpus, s.crashers} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("corpus: create %s: %w", dir, err)
		}
	}
	files, err := os.ReadDir(s.corpus)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", s.corpus, err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.corpus, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("corpus: read input %s: %w", f.Name(), err)
		}
		s.sigs[hashData(data)] = struct{}{}
		s.inputs = append(s.inputs, data)
	}
	return s, nil
}

// Inputs returns the loaded corpus in directory order.
func (s *Store) Inputs() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.inputs...)
}

// AddInput persists data unless an identical input is already stored.
func (s *Store) AddInput(data []byte) error {
	sig := hashData(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sigs[sig]; ok {
		return nil
	}
	if err := os.WriteFile(filepath.Join(s.corpus, sig.String()), data, 0o644); err != nil {
		return fmt.Errorf("corpus: write input: %w", err)
	}
	s.sigs[sig] = struct{}{}
	s.inputs = append(s.inputs, append([]byte(nil), data...))
	return nil
}

// AddCrasher persists a faulting input together with the target's output
// and a quoted form of the input to simplify writing standalone
// reproducers. Crashers are deduplicated by input bytes.
func (s *Store) AddCrasher(data, output []byte) error {
	sig := hashData(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.crashed[sig]; ok {
		return nil
	}
	base := filepath.Join(s.crashers, sig.String())
	if err := os.WriteFile(base, data, 0o644); err != nil {
		return fmt.Errorf("corpus: write crasher: %w", err)
	}
	if err := os.WriteFile(base+".quoted", quoteInput(data), 0o644); err != nil {
		return fmt.Errorf("corpus: write crasher: %w", err)
	}
	if err := os.WriteFile(base+".output", output, 0o644); err != nil {
		return fmt.Errorf("corpus: write crasher: %w", err)
	}
	s.crashed[sig] = struct{}{}
	return nil
}

func quoteInput(data []byte) []byte {
	var buf bytes.Buffer
	for i := 0; i < len(data); i += 20 {
		e := i + 20
		if e > len(data) {
			e = len(data)
		}
		fmt.Fprintf(&buf, "\t%q", data[i:e])
		if e != len(data) {
			fmt.Fprintf(&buf, " +")
		}
		fmt.Fprintf(&buf, "\n")
	}
	return buf.Bytes()
}
