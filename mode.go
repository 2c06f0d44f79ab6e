package feedtab

import (
	"regexp"
	"strings"
)

// Mode is the page-level classification of an activity feed document.
type Mode string

// Supported modes. ModeAuto asks the converter to detect the mode.
const (
	ModeAuto     Mode = ""
	ModePosts    Mode = "posts"
	ModeComments Mode = "comments"
)

// String returns the mode name, "auto" for ModeAuto.
func (m Mode) String() string {
	if m == ModeAuto {
		return "auto"
	}
	return string(m)
}

// ParseMode converts a user-supplied mode name into a Mode.
// An empty string or "auto" yields ModeAuto. Returns EINVALID for unknown names.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAuto, "auto":
		return ModeAuto, nil
	case ModePosts:
		return ModePosts, nil
	case ModeComments:
		return ModeComments, nil
	}
	return ModeAuto, Errorf(EINVALID, "unknown mode %q: want posts or comments", s)
}

// ModeDetector classifies a document as a posts or comments feed.
type ModeDetector interface {
	// DetectMode inspects raw markup and returns ModePosts or ModeComments.
	DetectMode(html string) Mode
}

var loadedRe = regexp.MustCompile(`(?i)Loaded\s+\d+\s+(Comments|Posts)\s+posts`)

// DetectMode looks for the "Loaded N Comments posts" marker that LinkedIn
// renders above an activity list. Pages without the marker are posts feeds.
func DetectMode(html string) Mode {
	m := loadedRe.FindStringSubmatch(html)
	if m != nil && strings.HasPrefix(strings.ToLower(m[1]), "comment") {
		return ModeComments
	}
	return ModePosts
}

var _ ModeDetector = Detector{}

// Detector implements ModeDetector with DetectMode.
type Detector struct{}

// DetectMode implements ModeDetector.
func (Detector) DetectMode(html string) Mode {
	return DetectMode(html)
}
