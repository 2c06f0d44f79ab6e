// Package fs provides file-based input and output for feedtab.
package fs

import (
	"os"
	"strings"

	"github.com/fwojciec/feedtab"
)

// ReadDocument reads a saved page from path. Byte sequences that are not
// valid UTF-8 are dropped rather than rejected, since browsers sometimes
// save pages with stray bytes.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", feedtab.Errorf(feedtab.ENOTFOUND, "input file not found: %s", path)
	}
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
