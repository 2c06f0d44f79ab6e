package extract

import "github.com/fwojciec/feedtab"

// DedupComments drops comments whose (comment, date) pair was already seen,
// keeping the first occurrence and the relative order of the rest.
func DedupComments(comments []*feedtab.Comment) []*feedtab.Comment {
	type key struct{ comment, date string }

	seen := make(map[key]struct{}, len(comments))
	out := make([]*feedtab.Comment, 0, len(comments))

	for _, c := range comments {
		k := key{c.Comment, c.Date}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
