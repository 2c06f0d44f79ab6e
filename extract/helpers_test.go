package extract_test

import (
	"testing"
	"time"

	"github.com/fwojciec/feedtab"
	"github.com/fwojciec/feedtab/goquery"
	"github.com/stretchr/testify/require"
)

// testNow is the fallback date for records without an identifier.
var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

const testURN = "urn:li:activity:7130316800000012345"

const testUpdateURL = "https://www.linkedin.com/feed/update/urn:li:activity:7130316800000012345/"

// block parses a single feed update whose inner markup is inner.
func block(t *testing.T, inner string) feedtab.Node {
	t.Helper()

	return blockWithAttrs(t, "", inner)
}

// blockWithAttrs is like block but adds raw attributes to the container.
func blockWithAttrs(t *testing.T, attrs, inner string) feedtab.Node {
	t.Helper()

	root, err := goquery.NewParser().Parse(`<html><body><div class="feed-shared-update-v2" ` + attrs + `>` + inner + `</div></body></html>`)
	require.NoError(t, err)
	b := root.SelectOne("div.feed-shared-update-v2")
	require.NotNil(t, b)
	return b
}

func fixedClock() time.Time {
	return testNow
}
