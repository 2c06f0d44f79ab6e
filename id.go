package feedtab

import (
	"regexp"
	"strconv"
	"time"
)

// Formats of the date, time and weekday columns.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// idRe matches a run of exactly 19 digits. Activity identifiers embed their
// creation time in the high 41 bits.
var idRe = regexp.MustCompile(`(?:^|\D)(\d{19})(?:\D|$)`)

// ExtractID returns the first 19-digit identifier embedded in s.
func ExtractID(s string) (uint64, bool) {
	m := idRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// DecodeID returns the creation time encoded in an activity identifier.
// The low 22 bits carry machine and sequence data and are discarded; the
// rest is milliseconds since the Unix epoch.
func DecodeID(id uint64) time.Time {
	return time.UnixMilli(int64(id >> 22)).UTC()
}

// Stamp derives the date, time and weekday columns for a record from the
// identifier embedded in url. When url carries no identifier, the date and
// weekday of now are used and the time is left empty.
func Stamp(url string, now time.Time) (date, clock, day string) {
	if id, ok := ExtractID(url); ok {
		t := DecodeID(id)
		return t.Format(DateLayout), t.Format(TimeLayout), t.Weekday().String()
	}
	return now.Format(DateLayout), "", now.Weekday().String()
}
