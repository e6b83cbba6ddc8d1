package errs_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"zola-posts/errs"
)

func TestFetchErrorMessage(t *testing.T) {
	err := errs.NewStatusError("http://api/posts/", 502, "bad gateway")
	assert.Equal(t, "fetch http://api/posts/: status=502 body=bad gateway", err.Error())
	assert.Nil(t, err.Unwrap())

	cause := errors.New("connection refused")
	err = errs.NewFetchError("http://api/posts/", cause)
	assert.Equal(t, "fetch http://api/posts/: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("post 3: %w", errs.NewIOError("/out/a.md", fs.ErrPermission))

	var ioErr *errs.IOError
	assert.True(t, errors.As(wrapped, &ioErr))
	assert.Equal(t, "/out/a.md", ioErr.Path)
	assert.ErrorIs(t, wrapped, fs.ErrPermission)

	var decodeErr *errs.DecodeError
	assert.False(t, errors.As(wrapped, &decodeErr))
}

func TestSerializeErrorMessage(t *testing.T) {
	err := errs.NewSerializeError("Hello", errors.New("boom"))
	assert.Equal(t, `serialize front matter for "Hello": boom`, err.Error())
}
