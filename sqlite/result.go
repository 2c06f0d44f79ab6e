package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/feedtab"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ feedtab.ResultWriter = (*ResultService)(nil)
	_ feedtab.RunService   = (*ResultService)(nil)
)

// ResultService stores converted results in SQLite. Each WriteResult call
// becomes a run; rows already stored by an earlier run are skipped, so
// importing the same document twice does not duplicate records.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// hashRow computes the xxHash of a row's fields and returns it as hex.
func hashRow(fields ...string) string {
	h := xxhash.New()
	for _, f := range fields {
		_, _ = h.WriteString(f)
		_, _ = h.Write([]byte{0x1f})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func postHash(p *feedtab.Post) string {
	return hashRow(p.Caption, p.Date, p.Time, p.Day,
		strconv.Itoa(p.Likes), strconv.Itoa(p.Comments), strconv.Itoa(p.Shares),
		string(p.Format), p.URL)
}

func commentHash(c *feedtab.Comment) string {
	return hashRow(c.Comment, c.Date, c.Time, c.Day,
		strconv.Itoa(c.Likes), c.Type, c.InResponseTo, c.URL)
}

// WriteResult stores res as a new run in a single transaction.
func (s *ResultService) WriteResult(ctx context.Context, source string, res *feedtab.Result) error {
	if res == nil {
		return feedtab.Errorf(feedtab.EINVALID, "result required")
	}
	if res.Mode != feedtab.ModePosts && res.Mode != feedtab.ModeComments {
		return feedtab.Errorf(feedtab.EINVALID, "cannot store result with mode %q", res.Mode)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	run := &feedtab.Run{
		ID:        uuid.New().String(),
		Source:    source,
		Mode:      res.Mode,
		Records:   res.Len(),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, mode, records, inserted, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`, run.ID, run.Source, string(run.Mode), run.Records, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	if res.Mode == feedtab.ModeComments {
		run.Inserted, err = insertComments(ctx, tx, run.ID, res.Comments)
	} else {
		run.Inserted, err = insertPosts(ctx, tx, run.ID, res.Posts)
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "UPDATE runs SET inserted = ? WHERE id = ?", run.Inserted, run.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func insertPosts(ctx context.Context, tx *sql.Tx, runID string, posts []*feedtab.Post) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO posts (run_id, caption, date, time, day, likes, comments, shares, format, url, row_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(row_hash) DO NOTHING
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var inserted int
	for _, p := range posts {
		r, err := stmt.ExecContext(ctx, runID, p.Caption, p.Date, p.Time, p.Day,
			p.Likes, p.Comments, p.Shares, string(p.Format), p.URL, postHash(p))
		if err != nil {
			return 0, err
		}
		n, err := r.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}
	return inserted, nil
}

func insertComments(ctx context.Context, tx *sql.Tx, runID string, comments []*feedtab.Comment) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO comments (run_id, comment, date, time, day, likes, type, in_response_to, url, row_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(row_hash) DO NOTHING
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var inserted int
	for _, c := range comments {
		r, err := stmt.ExecContext(ctx, runID, c.Comment, c.Date, c.Time, c.Day,
			c.Likes, c.Type, c.InResponseTo, c.URL, commentHash(c))
		if err != nil {
			return 0, err
		}
		n, err := r.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}
	return inserted, nil
}

// FindRunByID retrieves a run by ID.
func (s *ResultService) FindRunByID(ctx context.Context, id string) (*feedtab.Run, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, feedtab.Errorf(feedtab.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *ResultService) FindRuns(ctx context.Context, filter feedtab.RunFilter) ([]*feedtab.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + runColumns + " FROM runs")
	appendRunFilter(&query, &args, filter)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*feedtab.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// DeleteRun removes a run and the rows it inserted.
func (s *ResultService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return feedtab.Errorf(feedtab.ENOTFOUND, "run not found")
	}
	return nil
}

// FindPosts returns the posts inserted by runID in insertion order, or every
// stored post when runID is empty.
func (s *ResultService) FindPosts(ctx context.Context, runID string) ([]*feedtab.Post, error) {
	query := "SELECT caption, date, time, day, likes, comments, shares, format, url FROM posts"
	var args []any
	if runID != "" {
		query += " WHERE run_id = ?"
		args = append(args, runID)
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*feedtab.Post
	for rows.Next() {
		var p feedtab.Post
		var format string
		if err := rows.Scan(&p.Caption, &p.Date, &p.Time, &p.Day, &p.Likes, &p.Comments, &p.Shares, &format, &p.URL); err != nil {
			return nil, err
		}
		p.Format = feedtab.Format(format)
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// FindComments returns the comments inserted by runID in insertion order,
// or every stored comment when runID is empty.
func (s *ResultService) FindComments(ctx context.Context, runID string) ([]*feedtab.Comment, error) {
	query := "SELECT comment, date, time, day, likes, type, in_response_to, url FROM comments"
	var args []any
	if runID != "" {
		query += " WHERE run_id = ?"
		args = append(args, runID)
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*feedtab.Comment
	for rows.Next() {
		var c feedtab.Comment
		if err := rows.Scan(&c.Comment, &c.Date, &c.Time, &c.Day, &c.Likes, &c.Type, &c.InResponseTo, &c.URL); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}
