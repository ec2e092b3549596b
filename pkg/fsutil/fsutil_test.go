package fsutil_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lyqlplay/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "query.lyql")
		require.NoError(t, os.WriteFile(path, []byte("SELECT 1;"), 0o644))

		got, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "SELECT 1;", string(got))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.lyql"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fsutil.ErrNotFound)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, "anything")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
