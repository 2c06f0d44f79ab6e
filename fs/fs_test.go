package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/feedtab"
	"github.com/fwojciec/feedtab/fs"
	"github.com/fwojciec/feedtab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads file contents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "feed.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>Résumé</html>"), 0644))

		got, err := fs.ReadDocument(path)

		require.NoError(t, err)
		assert.Equal(t, "<html>Résumé</html>", got)
	})

	t.Run("drops invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "feed.html")
		require.NoError(t, os.WriteFile(path, []byte("<p>a\xffb\xfe</p>"), 0644))

		got, err := fs.ReadDocument(path)

		require.NoError(t, err)
		assert.Equal(t, "<p>ab</p>", got)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadDocument(filepath.Join(t.TempDir(), "missing.html"))

		require.Error(t, err)
		assert.Equal(t, feedtab.ENOTFOUND, feedtab.ErrorCode(err))
	})
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 30, 5, 0, time.UTC)

	tests := []struct {
		name string
		mode feedtab.Mode
		seq  int
		want string
	}{
		{name: "posts", mode: feedtab.ModePosts, want: "linkedin_posts_20250601_093005.xlsx"},
		{name: "comments", mode: feedtab.ModeComments, want: "linkedin_comments_20250601_093005.xlsx"},
		{name: "sequence suffix", mode: feedtab.ModePosts, seq: 2, want: "linkedin_posts_20250601_093005_2.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.OutputName(tt.mode, now, tt.seq))
		})
	}
}

// Story: Atomic File Storage
// The store writes next to the target and renames on commit

func TestFileStore_WriteUsesTempFile(t *testing.T) {
	t.Parallel()

	// Given a store targeting a nested path
	path := filepath.Join(t.TempDir(), "out", "feed.xlsx")
	store := fs.NewFileStore(path)

	// When I write data
	err := store.Write([]byte("data"))

	// Then the temp file exists
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	require.NoError(t, err, "file should exist as temp file")

	// And the final file does not exist yet
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "final file should not exist until commit")
}

func TestFileStore_CommitReplacesFinalFile(t *testing.T) {
	t.Parallel()

	// Given an existing output file
	path := filepath.Join(t.TempDir(), "feed.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	store := fs.NewFileStore(path)
	require.NoError(t, store.Write([]byte("new")))

	// When I commit
	err := store.Commit()

	// Then the final file holds the new data
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	// And the temp file is gone
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be gone after commit")
}

func TestFileStore_AbortLeavesFinalFile(t *testing.T) {
	t.Parallel()

	// Given an existing output file and a pending write
	path := filepath.Join(t.TempDir(), "feed.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	store := fs.NewFileStore(path)
	require.NoError(t, store.Write([]byte("new")))

	// When I abort
	err := store.Abort()

	// Then the temp file is removed and the old file is intact
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	// And aborting again is harmless
	assert.NoError(t, store.Abort())
}

func TestFileStore_WriteRejectsDirectory(t *testing.T) {
	t.Parallel()

	// Given a directory sitting at the output path
	path := filepath.Join(t.TempDir(), "feed.xlsx")
	require.NoError(t, os.Mkdir(path, 0755))
	store := fs.NewFileStore(path)

	// When I write data
	err := store.Write([]byte("data"))

	// Then the write is a conflict and no temp file is left behind
	require.Error(t, err)
	assert.Equal(t, feedtab.ECONFLICT, feedtab.ErrorCode(err))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_WriteResult(t *testing.T) {
	t.Parallel()

	res := &feedtab.Result{Mode: feedtab.ModeComments, Comments: []*feedtab.Comment{{Comment: "hi"}}}

	t.Run("writes encoded result to chosen path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var gotSource string
		var gotMode feedtab.Mode
		encoder := &mock.ResultEncoder{
			EncodeResultFn: func(r *feedtab.Result) ([]byte, error) {
				return []byte("workbook"), nil
			},
		}
		w := fs.NewWriter(encoder, func(source string, mode feedtab.Mode) string {
			gotSource, gotMode = source, mode
			return filepath.Join(dir, "out.xlsx")
		})

		err := w.WriteResult(context.Background(), "feed.html", res)

		require.NoError(t, err)
		assert.Equal(t, "feed.html", gotSource)
		assert.Equal(t, feedtab.ModeComments, gotMode)
		got, err := os.ReadFile(filepath.Join(dir, "out.xlsx"))
		require.NoError(t, err)
		assert.Equal(t, "workbook", string(got))
	})

	t.Run("returns encoder error without writing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		encoder := &mock.ResultEncoder{
			EncodeResultFn: func(r *feedtab.Result) ([]byte, error) {
				return nil, errors.New("encode failed")
			},
		}
		w := fs.NewWriter(encoder, func(string, feedtab.Mode) string {
			return filepath.Join(dir, "out.xlsx")
		})

		err := w.WriteResult(context.Background(), "feed.html", res)

		require.EqualError(t, err, "encode failed")
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := fs.NewWriter(&mock.ResultEncoder{}, func(string, feedtab.Mode) string { return "" })

		err := w.WriteResult(ctx, "feed.html", res)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
