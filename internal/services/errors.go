package services

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/openai/openai-go/v3"
	"google.golang.org/api/googleapi"
)

// ErrorKind tags a chat failure with the class of thing that went wrong.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindNetwork        ErrorKind = "network"
	KindProviderFormat ErrorKind = "provider_format"
	KindUnknown        ErrorKind = "unknown"
)

var errMissingKey = errors.New("LLM_API_KEY is not set")

// ChatError is the error type returned across the chat path.
type ChatError struct {
	Kind ErrorKind
	Err  error
}

func (e *ChatError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *ChatError) Unwrap() error { return e.Err }

func NewValidationError(msg string) *ChatError {
	return &ChatError{Kind: KindValidation, Err: errors.New(msg)}
}

func providerFormatError(msg string) *ChatError {
	return &ChatError{Kind: KindProviderFormat, Err: errors.New(msg)}
}

// KindOf reports the kind of err, KindUnknown when it carries none.
func KindOf(err error) ErrorKind {
	var ce *ChatError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// classify tags a raw provider SDK error. Errors that already carry a kind
// are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var ce *ChatError
	if errors.As(err, &ce) {
		return err
	}

	status := 0
	var oaErr *openai.Error
	var gErr *googleapi.Error
	switch {
	case errors.As(err, &oaErr):
		status = oaErr.StatusCode
	case errors.As(err, &gErr):
		status = gErr.Code
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &ChatError{Kind: KindAuthentication, Err: err}
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return &ChatError{Kind: KindNetwork, Err: err}
	case status != 0:
		return &ChatError{Kind: KindUnknown, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &ChatError{Kind: KindNetwork, Err: err}
	}
	return &ChatError{Kind: KindUnknown, Err: err}
}
