package feedtab

import (
	"context"
	"time"
)

// Run records one stored conversion: which document was converted, in
// which mode, and how many new rows it contributed.
type Run struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Mode   Mode   `json:"mode"`
	// Records is the number of records in the converted result.
	Records int `json:"records"`
	// Inserted is the number of those records not already stored by an
	// earlier run.
	Inserted  int       `json:"inserted"`
	CreatedAt time.Time `json:"createdAt"`
}

// RunService represents a service for inspecting stored conversions.
type RunService interface {
	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun removes a run and the rows it inserted.
	// Returns ENOTFOUND if run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Source *string `json:"source"`
	Mode   *Mode   `json:"mode"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
