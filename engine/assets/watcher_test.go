package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsChange(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "cube.wgsl")
	require.NoError(t, os.WriteFile(watched, []byte("// v1"), 0o644))

	w, err := NewWatcher(150*time.Millisecond, watched)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte("// v2"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte("// v3"), 0o644))

	abs, err := filepath.Abs(watched)
	require.NoError(t, err)

	select {
	case name := <-w.Changes():
		assert.Equal(t, abs, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case name := <-w.Changes():
		t.Fatalf("unexpected second change for %s", name)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(DefaultDebounce, filepath.Join(t.TempDir(), "missing.png"))
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.Error(t, w.Close())
}
