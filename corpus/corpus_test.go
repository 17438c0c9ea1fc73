// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyjkemp/plugfuzz/fuzz"
	"github.com/bradleyjkemp/plugfuzz/target"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Inputs())

	require.NoError(t, s.AddInput([]byte("one")))
	require.NoError(t, s.AddInput([]byte("two")))
	require.NoError(t, s.AddInput([]byte("one"))) // duplicate, no-op

	reopened, err := Open(dir)
	require.NoError(t, err)
	inputs := reopened.Inputs()
	assert.Len(t, inputs, 2)
	assert.ElementsMatch(t, [][]byte{[]byte("one"), []byte("two")}, inputs)
}

func TestStoreAddCrasher(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	data := []byte("crash me")
	require.NoError(t, s.AddCrasher(data, []byte("panic: oops")))
	require.NoError(t, s.AddCrasher(data, []byte("panic: oops"))) // dedupe

	sig := hashData(data)
	base := filepath.Join(dir, "crashers", sig.String())

	saved, err := os.ReadFile(base)
	require.NoError(t, err)
	assert.Equal(t, data, saved)

	output, err := os.ReadFile(base + ".output")
	require.NoError(t, err)
	assert.Equal(t, []byte("panic: oops"), output)

	quoted, err := os.ReadFile(base + ".quoted")
	require.NoError(t, err)
	assert.Contains(t, string(quoted), `"crash me"`)
}

func TestQuoteInputChunks(t *testing.T) {
	quoted := quoteInput([]byte("aaaaaaaaaaaaaaaaaaaabbbb")) // 20 a's + 4 b's
	assert.Equal(t, "\t\"aaaaaaaaaaaaaaaaaaaa\" +\n\t\"bbbb\"\n", string(quoted))
}

func TestSaverPersistsDiscoveries(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	saver := &Saver[[]byte]{Store: s, Log: zerolog.Nop()}
	saver.InputsEnqueued([][]byte{[]byte("a"), []byte("b")})
	saver.InputFaulted([]byte("bad"), fuzz.FaultResult{
		Faulted: true,
		Detail:  target.Crash{Output: []byte("boom"), Suppression: []byte("site")},
	})

	assert.Len(t, s.Inputs(), 2)
	out, err := os.ReadFile(filepath.Join(dir, "crashers", hashData([]byte("bad")).String()+".output"))
	require.NoError(t, err)
	assert.Equal(t, []byte("boom"), out)
}

var _ fuzz.Tracer[[]byte, []byte] = (*Saver[[]byte])(nil)
