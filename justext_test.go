package justext_test

import (
	"testing"

	"github.com/justext-go/justext"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := justext.Errorf(justext.ENOTFOUND, "project %q not found", "test")

	assert.Equal(t, justext.ENOTFOUND, justext.ErrorCode(err))
	assert.Equal(t, "project \"test\" not found", justext.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, justext.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, justext.ErrorMessage(nil))
}
