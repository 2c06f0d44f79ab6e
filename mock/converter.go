package mock

import "github.com/fwojciec/feedtab"

var _ feedtab.Converter = (*Converter)(nil)

// Converter is a mock implementation of feedtab.Converter.
type Converter struct {
	ConvertFn func(html string, mode feedtab.Mode) (*feedtab.Result, error)
}

func (c *Converter) Convert(html string, mode feedtab.Mode) (*feedtab.Result, error) {
	return c.ConvertFn(html, mode)
}
