package fs

import (
	"context"

	"github.com/fwojciec/feedtab"
)

// Ensure Writer implements feedtab.ResultWriter at compile time.
var _ feedtab.ResultWriter = (*Writer)(nil)

// PathFunc chooses the output file for the result converted from source.
type PathFunc func(source string, mode feedtab.Mode) string

// Writer encodes results and stores each one in its own file.
type Writer struct {
	encoder feedtab.ResultEncoder
	path    PathFunc
}

// NewWriter creates a Writer that encodes with encoder and writes to the
// file path chooses.
func NewWriter(encoder feedtab.ResultEncoder, path PathFunc) *Writer {
	return &Writer{encoder: encoder, path: path}
}

// WriteResult encodes res and atomically writes it to its output file.
func (w *Writer) WriteResult(ctx context.Context, source string, res *feedtab.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := w.encoder.EncodeResult(res)
	if err != nil {
		return err
	}

	store := NewFileStore(w.path(source, res.Mode))
	if err := store.Write(data); err != nil {
		_ = store.Abort()
		return err
	}
	return store.Commit()
}
