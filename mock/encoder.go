package mock

import "github.com/fwojciec/feedtab"

var _ feedtab.ResultEncoder = (*ResultEncoder)(nil)

// ResultEncoder is a mock implementation of feedtab.ResultEncoder.
type ResultEncoder struct {
	EncodeResultFn func(res *feedtab.Result) ([]byte, error)
}

func (e *ResultEncoder) EncodeResult(res *feedtab.Result) ([]byte, error) {
	return e.EncodeResultFn(res)
}
