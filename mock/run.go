package mock

import (
	"context"

	"github.com/fwojciec/feedtab"
)

var _ feedtab.RunService = (*RunService)(nil)

// RunService is a mock implementation of feedtab.RunService.
type RunService struct {
	FindRunByIDFn func(ctx context.Context, id string) (*feedtab.Run, error)
	FindRunsFn    func(ctx context.Context, filter feedtab.RunFilter) ([]*feedtab.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*feedtab.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter feedtab.RunFilter) ([]*feedtab.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
