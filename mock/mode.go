package mock

import "github.com/fwojciec/feedtab"

var _ feedtab.ModeDetector = (*ModeDetector)(nil)

// ModeDetector is a mock implementation of feedtab.ModeDetector.
type ModeDetector struct {
	DetectModeFn func(html string) feedtab.Mode
}

func (d *ModeDetector) DetectMode(html string) feedtab.Mode {
	return d.DetectModeFn(html)
}
