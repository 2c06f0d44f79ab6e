package feedtab

import "context"

// ResultWriter persists the records of one converted document.
type ResultWriter interface {
	// WriteResult writes every record of res. source identifies the
	// document the records came from (typically its file path).
	WriteResult(ctx context.Context, source string, res *Result) error
}

// ResultEncoder serializes a result into a file format.
type ResultEncoder interface {
	// EncodeResult returns the encoded file contents of res.
	EncodeResult(res *Result) ([]byte, error)
}
