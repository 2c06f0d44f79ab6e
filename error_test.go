package feedtab_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/feedtab"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := feedtab.Errorf(feedtab.ENOTFOUND, "no data in %q", "page.html")

	assert.Equal(t, feedtab.ENOTFOUND, feedtab.ErrorCode(err))
	assert.Equal(t, "no data in \"page.html\"", feedtab.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("convert page.html: %w", feedtab.Errorf(feedtab.EINVALID, "bad mode"))

	assert.Equal(t, feedtab.EINVALID, feedtab.ErrorCode(err))
	assert.Equal(t, "bad mode", feedtab.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, feedtab.EINTERNAL, feedtab.ErrorCode(err))
	assert.Equal(t, "Internal error", feedtab.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, feedtab.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, feedtab.ErrorMessage(nil))
}
