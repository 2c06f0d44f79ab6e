package main_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/feedtab"
	main "github.com/fwojciec/feedtab/cmd/feedtab"
	"github.com/fwojciec/feedtab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Now:    func() time.Time { return testNow },
		Read: func(path string) (string, error) {
			return "<html>" + path + "</html>", nil
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string, mode feedtab.Mode) (*feedtab.Result, error) {
				if mode == feedtab.ModeAuto {
					mode = feedtab.ModePosts
				}
				return &feedtab.Result{Mode: mode, Posts: []*feedtab.Post{{}}, Comments: []*feedtab.Comment{{}}}, nil
			},
		},
		Encoder: &mock.ResultEncoder{
			EncodeResultFn: func(res *feedtab.Result) ([]byte, error) {
				return []byte("xlsx"), nil
			},
		},
	}
}

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("numbers outputs of several inputs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.ConvertCmd{Inputs: []string{"a.html", "b.html"}, Mode: "comments", Dir: dir, Concurrency: 2}

		err := cmd.Run(testDeps(stdout, stderr))

		require.NoError(t, err)
		assert.Equal(t,
			"Saved → "+filepath.Join(dir, "linkedin_comments_20250601_093000_1.xlsx")+"\n"+
				"Saved → "+filepath.Join(dir, "linkedin_comments_20250601_093000_2.xlsx")+"\n",
			stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("stores results when a database is configured", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		var stored []string
		deps.DBPath = "feedtab.db"
		deps.Results = &mock.ResultWriter{
			WriteResultFn: func(_ context.Context, source string, res *feedtab.Result) error {
				stored = append(stored, source)
				return nil
			},
		}
		cmd := &main.ConvertCmd{Inputs: []string{"a.html"}, Mode: "auto"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.html"}, stored)
		assert.Equal(t, "Saved → feedtab.db (1 posts from a.html)\n", stdout.String())
	})

	t.Run("rejects output with database", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Results = &mock.ResultWriter{}
		cmd := &main.ConvertCmd{Inputs: []string{"a.html"}, Output: "x.xlsx"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, feedtab.EINVALID, feedtab.ErrorCode(err))
	})

	t.Run("reports each failed input and keeps going", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Read = func(path string) (string, error) {
			if path == "bad.html" {
				return "", feedtab.Errorf(feedtab.ENOTFOUND, "input file not found: %s", path)
			}
			return "<html></html>", nil
		}
		cmd := &main.ConvertCmd{Inputs: []string{"bad.html", "good.html"}, Dir: dir}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 inputs failed")
		assert.Contains(t, stderr.String(), "error: bad.html: input file not found: bad.html")
		assert.Contains(t, stdout.String(), "linkedin_posts_20250601_093000_2.xlsx")
	})

	t.Run("returns single input error unchanged", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Converter = &mock.Converter{
			ConvertFn: func(string, feedtab.Mode) (*feedtab.Result, error) {
				return nil, errors.New("boom")
			},
		}
		cmd := &main.ConvertCmd{Inputs: []string{"a.html"}, Dir: t.TempDir()}

		err := cmd.Run(deps)

		require.EqualError(t, err, "boom")
		assert.Contains(t, stderr.String(), "error: a.html: Internal error")
	})
}

func TestDetectCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints mode per input", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Detector = &mock.ModeDetector{
			DetectModeFn: func(html string) feedtab.Mode {
				return feedtab.ModeComments
			},
		}

		err := (&main.DetectCmd{Inputs: []string{"a.html"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "a.html\tcomments\n", stdout.String())
	})

	t.Run("fails when an input cannot be read", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Read = func(path string) (string, error) {
			return "", feedtab.Errorf(feedtab.ENOTFOUND, "input file not found: %s", path)
		}

		err := (&main.DetectCmd{Inputs: []string{"a.html"}}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "input file not found: a.html")
		assert.Empty(t, stdout.String())
	})
}

func TestRunsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists runs", func(t *testing.T) {
		t.Parallel()

		var gotFilter feedtab.RunFilter
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Runs = &mock.RunService{
			FindRunsFn: func(_ context.Context, filter feedtab.RunFilter) ([]*feedtab.Run, error) {
				gotFilter = filter
				return []*feedtab.Run{{
					ID: "run-1", Source: "feed.html", Mode: feedtab.ModePosts,
					Records: 5, Inserted: 3, CreatedAt: testNow,
				}}, nil
			},
		}

		err := (&main.RunsCmd{Source: "feed.html", Limit: 10}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Source)
		assert.Equal(t, "feed.html", *gotFilter.Source)
		assert.Equal(t, 10, gotFilter.Limit)
		assert.Contains(t, stdout.String(), "run-1")
		assert.Contains(t, stdout.String(), "3/5 new")
		assert.Contains(t, stdout.String(), "feed.html")
	})

	t.Run("shows helpful message when no runs exist", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Runs = &mock.RunService{
			FindRunsFn: func(context.Context, feedtab.RunFilter) ([]*feedtab.Run, error) {
				return nil, nil
			},
		}

		err := (&main.RunsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs found")
	})
}
