package errs

import "fmt"

// FetchError is returned when a request to the posts API cannot be completed:
// the transport failed, the response body could not be read, or the server
// answered with a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func NewFetchError(url string, err error) *FetchError {
	return &FetchError{URL: url, Err: err}
}

func NewStatusError(url string, status int, body string) *FetchError {
	return &FetchError{URL: url, StatusCode: status, Body: body}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s: status=%d body=%s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError means the response arrived but did not match the expected record shape.
type DecodeError struct {
	URL string
	Err error
}

func NewDecodeError(url string, err error) *DecodeError {
	return &DecodeError{URL: url, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SerializeError means a post header could not be rendered as TOML front matter.
type SerializeError struct {
	Title string
	Err   error
}

func NewSerializeError(title string, err error) *SerializeError {
	return &SerializeError{Title: title, Err: err}
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize front matter for %q: %v", e.Title, e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}

// IOError wraps a failure to create or write a content file.
type IOError struct {
	Path string
	Err  error
}

func NewIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
