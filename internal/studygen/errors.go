package studygen

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest means the caller's input was unusable before any
// model call was made, e.g. an empty topic.
type ErrInvalidRequest struct {
	Reason string
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// ErrMalformedContent means the model returned text that does not
// conform to the expected content schema. Content carries the raw
// (fence-stripped) text for diagnostics.
type ErrMalformedContent struct {
	Content string
	Err     error
}

func (e *ErrMalformedContent) Error() string {
	return fmt.Sprintf("malformed content: %v", e.Err)
}

func (e *ErrMalformedContent) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is an ErrMalformedContent.
func IsMalformed(err error) bool {
	var me *ErrMalformedContent
	return errors.As(err, &me)
}

// IsInvalidRequest reports whether err is an ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	var ie *ErrInvalidRequest
	return errors.As(err, &ie)
}
