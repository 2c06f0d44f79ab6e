package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/feedtab"
)

// numPattern matches a number as LinkedIn renders it: digits with thousands
// separators and an optional magnitude suffix.
const numPattern = `\d[\d.,\x{00A0}\x{202F}]*(?:\s?[KkMmBb]\b)?`

var (
	numRe      = regexp.MustCompile(numPattern)
	othersRe   = regexp.MustCompile(`(?i)\band\s+(` + numPattern + `)\s+others?\b`)
	trailingRe = regexp.MustCompile(`(?i)(` + numPattern + `)\s*(?:comments?|others|reposts?|shares?)\b`)
	commentsRe = regexp.MustCompile(`(?i)(` + numPattern + `)\s*comments?\b`)
	sharesRe   = regexp.MustCompile(`(?i)(` + numPattern + `)\s*(?:reposts?|shares?)\b`)
	replyRe    = regexp.MustCompile(`(?i)replied to\s+(.+?)[’']?s?\s+comment`)
	postByRe   = regexp.MustCompile(`(?i)post by (.+)`)
)

// firstNumber parses the first number-like substring of s.
func firstNumber(s string) (int, bool) {
	m := numRe.FindString(s)
	if m == "" {
		return 0, false
	}
	return feedtab.ParseCount(m), true
}

// submatchCount parses the first capture group of re in s.
func submatchCount(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return feedtab.ParseCount(m[1]), true
}

// text returns the whitespace-collapsed text of n, or "" when n is nil.
func text(n feedtab.Node) string {
	if n == nil {
		return ""
	}
	return n.Text(" ", true)
}

// hasClassPrefix reports whether any class of n starts with one of prefixes.
func hasClassPrefix(n feedtab.Node, prefixes []string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		for _, p := range prefixes {
			if strings.HasPrefix(c, p) {
				return true
			}
		}
	}
	return false
}

// within reports whether n is nested inside an element whose class starts
// with one of prefixes.
func within(n feedtab.Node, prefixes []string) bool {
	return n.Closest(func(a feedtab.Node) bool {
		return hasClassPrefix(a, prefixes)
	}) != nil
}
