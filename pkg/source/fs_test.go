package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSReaderSingleFile(t *testing.T) {
	dir := t.TempDir()
	fName := filepath.Join(dir, "orders.csv")
	require.NoError(t, os.WriteFile(fName, []byte("order_id,product\nA-1,Widget\n"), 0o644))

	r := NewFSReader(FSConfig{}, fName, log.NewNopLogger())
	recs, err := r.Read(context.Background())

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "A-1", recs[0]["order_id"])
}

func TestFSReaderDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("order_id\nA-1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("order_id\nA-2\nA-3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not csv"), 0o644))

	r := NewFSReader(FSConfig{}, dir, log.NewNopLogger())
	recs, err := r.Read(context.Background())

	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestFSReaderMissingInput(t *testing.T) {
	r := NewFSReader(FSConfig{}, filepath.Join(t.TempDir(), "missing.csv"), log.NewNopLogger())

	_, err := r.Read(context.Background())
	assert.Error(t, err)
}

func TestFSReaderEmptyDirectory(t *testing.T) {
	r := NewFSReader(FSConfig{}, t.TempDir(), log.NewNopLogger())

	_, err := r.Read(context.Background())
	assert.Error(t, err)
}
