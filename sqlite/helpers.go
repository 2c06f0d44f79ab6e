package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/feedtab"
)

// runColumns lists the runs columns in the order scanRun reads them.
const runColumns = "id, source, mode, records, inserted, created_at"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRun reads one runs row selected with runColumns.
func scanRun(row rowScanner) (*feedtab.Run, error) {
	var run feedtab.Run
	var mode, createdAt string

	if err := row.Scan(&run.ID, &run.Source, &mode, &run.Records, &run.Inserted, &createdAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at of run %s: %w", run.ID, err)
	}
	run.Mode = feedtab.Mode(mode)
	run.CreatedAt = t
	return &run, nil
}

// appendRunFilter appends the WHERE conditions, newest-first ordering and
// pagination for filter to a query selecting from runs.
func appendRunFilter(query *strings.Builder, args *[]any, filter feedtab.RunFilter) {
	query.WriteString(" WHERE 1=1")
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		*args = append(*args, *filter.Source)
	}
	if filter.Mode != nil {
		query.WriteString(" AND mode = ?")
		*args = append(*args, string(*filter.Mode))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, filter.Limit)
	}
	if filter.Offset > 0 {
		// SQLite only accepts OFFSET after LIMIT.
		if filter.Limit <= 0 {
			query.WriteString(" LIMIT -1")
		}
		query.WriteString(" OFFSET ?")
		*args = append(*args, filter.Offset)
	}
}
