package fs

import (
	"fmt"
	"time"

	"github.com/fwojciec/feedtab"
)

// OutputName returns the default workbook name for a result of mode
// produced at now, e.g. linkedin_posts_20250601_093000.xlsx. A positive seq
// is appended so that several inputs converted in the same second get
// distinct names.
func OutputName(mode feedtab.Mode, now time.Time, seq int) string {
	name := fmt.Sprintf("linkedin_%s_%s", mode, now.Format("20060102_150405"))
	if seq > 0 {
		name += fmt.Sprintf("_%d", seq)
	}
	return name + ".xlsx"
}
