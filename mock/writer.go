package mock

import (
	"context"

	"github.com/fwojciec/feedtab"
)

var _ feedtab.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of feedtab.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, source string, res *feedtab.Result) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, source string, res *feedtab.Result) error {
	return w.WriteResultFn(ctx, source, res)
}
