package feedtab

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// countSeparators are stripped before parsing: comma, space, no-break space
// and narrow no-break space.
var countSeparators = strings.NewReplacer(",", "", " ", "", "\u00a0", "", "\u202f", "")

// countDecimal is the only number shape accepted before a magnitude suffix.
// It rules out signs, exponents and the NaN and Inf spellings ParseFloat knows.
var countDecimal = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

var countMagnitudes = map[byte]float64{
	'K': 1_000,
	'M': 1_000_000,
	'B': 1_000_000_000,
}

// ParseCount parses an abbreviated count such as "2.5K", "3 M" or "1,234".
// Malformed or empty input yields 0.
func ParseCount(s string) int {
	s = strings.ToUpper(countSeparators.Replace(strings.TrimSpace(s)))
	if s == "" {
		return 0
	}

	if mult, ok := countMagnitudes[s[len(s)-1]]; ok {
		num := s[:len(s)-1]
		if !countDecimal.MatchString(num) {
			return 0
		}
		f, err := strconv.ParseFloat(num, 64)
		if err != nil || f*mult >= math.MaxInt {
			return 0
		}
		return int(f * mult)
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
