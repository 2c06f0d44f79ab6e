package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/feedtab"
	"github.com/fwojciec/feedtab/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func postsResult() *feedtab.Result {
	return &feedtab.Result{
		Mode: feedtab.ModePosts,
		Posts: []*feedtab.Post{
			{
				Caption: "Hello world", Date: "2023-11-14", Time: "22:13:20", Day: "Tuesday",
				Likes: 12, Comments: 3, Shares: 1, Format: feedtab.FormatText,
				URL: "https://www.linkedin.com/feed/update/urn:li:activity:7130316800000012345/",
			},
			{Caption: "Look at this", Date: "2025-06-01", Day: "Sunday", Format: feedtab.FormatImage},
		},
	}
}

func commentsResult() *feedtab.Result {
	return &feedtab.Result{
		Mode: feedtab.ModeComments,
		Comments: []*feedtab.Comment{
			{
				Comment: "Great insight!", Date: "2023-11-14", Time: "22:13:20", Day: "Tuesday",
				Likes: 4, Type: "Direct comment on Jane Doe's post", InResponseTo: "Original post text",
			},
		},
	}
}

func TestResultService_WriteResult(t *testing.T) {
	t.Parallel()

	t.Run("stores posts under a new run", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewResultService(openDB(t))

		err := s.WriteResult(ctx, "feed.html", postsResult())
		require.NoError(t, err)

		runs, err := s.FindRuns(ctx, feedtab.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.NotEmpty(t, runs[0].ID)
		assert.Equal(t, "feed.html", runs[0].Source)
		assert.Equal(t, feedtab.ModePosts, runs[0].Mode)
		assert.Equal(t, 2, runs[0].Records)
		assert.Equal(t, 2, runs[0].Inserted)
		assert.False(t, runs[0].CreatedAt.IsZero())

		posts, err := s.FindPosts(ctx, runs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, postsResult().Posts, posts)
	})

	t.Run("stores comments", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewResultService(openDB(t))

		require.NoError(t, s.WriteResult(ctx, "comments.html", commentsResult()))

		comments, err := s.FindComments(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, commentsResult().Comments, comments)

		posts, err := s.FindPosts(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("skips rows stored by an earlier run", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewResultService(openDB(t))

		require.NoError(t, s.WriteResult(ctx, "feed.html", postsResult()))

		again := postsResult()
		again.Posts = append(again.Posts, &feedtab.Post{Caption: "New one", Format: feedtab.FormatText})
		require.NoError(t, s.WriteResult(ctx, "feed.html", again))

		runs, err := s.FindRuns(ctx, feedtab.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, 3, runs[0].Records)
		assert.Equal(t, 1, runs[0].Inserted)

		posts, err := s.FindPosts(ctx, "")
		require.NoError(t, err)
		assert.Len(t, posts, 3)

		latest, err := s.FindPosts(ctx, runs[0].ID)
		require.NoError(t, err)
		require.Len(t, latest, 1)
		assert.Equal(t, "New one", latest[0].Caption)
	})

	t.Run("rejects nil result", func(t *testing.T) {
		t.Parallel()

		err := sqlite.NewResultService(openDB(t)).WriteResult(context.Background(), "x.html", nil)

		require.Error(t, err)
		assert.Equal(t, feedtab.EINVALID, feedtab.ErrorCode(err))
	})

	t.Run("rejects result without mode", func(t *testing.T) {
		t.Parallel()

		err := sqlite.NewResultService(openDB(t)).WriteResult(context.Background(), "x.html", &feedtab.Result{})

		require.Error(t, err)
		assert.Equal(t, feedtab.EINVALID, feedtab.ErrorCode(err))
	})
}

func TestResultService_FindRuns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sqlite.NewResultService(openDB(t))
	require.NoError(t, s.WriteResult(ctx, "a.html", postsResult()))
	require.NoError(t, s.WriteResult(ctx, "b.html", commentsResult()))

	t.Run("filters by source", func(t *testing.T) {
		source := "a.html"
		runs, err := s.FindRuns(ctx, feedtab.RunFilter{Source: &source})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "a.html", runs[0].Source)
	})

	t.Run("filters by mode", func(t *testing.T) {
		mode := feedtab.ModeComments
		runs, err := s.FindRuns(ctx, feedtab.RunFilter{Mode: &mode})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "b.html", runs[0].Source)
	})

	t.Run("returns newest first with limit", func(t *testing.T) {
		runs, err := s.FindRuns(ctx, feedtab.RunFilter{Limit: 1})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "b.html", runs[0].Source)
	})

	t.Run("offset without limit skips newest", func(t *testing.T) {
		runs, err := s.FindRuns(ctx, feedtab.RunFilter{Offset: 1})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "a.html", runs[0].Source)
	})
}

func TestResultService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored run", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewResultService(openDB(t))
		require.NoError(t, s.WriteResult(ctx, "a.html", postsResult()))
		runs, err := s.FindRuns(ctx, feedtab.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 1)

		run, err := s.FindRunByID(ctx, runs[0].ID)

		require.NoError(t, err)
		assert.Equal(t, runs[0], run)
	})

	t.Run("returns ENOTFOUND for unknown id", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.NewResultService(openDB(t)).FindRunByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, feedtab.ENOTFOUND, feedtab.ErrorCode(err))
	})
}

func TestResultService_DeleteRun(t *testing.T) {
	t.Parallel()

	t.Run("removes run and its rows", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewResultService(openDB(t))
		require.NoError(t, s.WriteResult(ctx, "a.html", postsResult()))
		runs, err := s.FindRuns(ctx, feedtab.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 1)

		require.NoError(t, s.DeleteRun(ctx, runs[0].ID))

		posts, err := s.FindPosts(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, posts)

		_, err = s.FindRunByID(ctx, runs[0].ID)
		assert.Equal(t, feedtab.ENOTFOUND, feedtab.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown id", func(t *testing.T) {
		t.Parallel()

		err := sqlite.NewResultService(openDB(t)).DeleteRun(context.Background(), "missing")

		assert.Equal(t, feedtab.ENOTFOUND, feedtab.ErrorCode(err))
	})
}
