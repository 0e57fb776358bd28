package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/openai/openai-go/v3"
	"google.golang.org/api/googleapi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"openai unauthorized", &openai.Error{StatusCode: http.StatusUnauthorized}, KindAuthentication},
		{"openai unavailable", &openai.Error{StatusCode: http.StatusServiceUnavailable}, KindNetwork},
		{"gemini forbidden", &googleapi.Error{Code: http.StatusForbidden}, KindAuthentication},
		{"gemini rate limited", &googleapi.Error{Code: http.StatusTooManyRequests}, KindNetwork},
		{"gemini not found", &googleapi.Error{Code: http.StatusNotFound}, KindUnknown},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), KindNetwork},
		{"plain", errors.New("boom"), KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			if KindOf(got) != tc.want {
				t.Errorf("kind = %q, want %q", KindOf(got), tc.want)
			}
			if !errors.Is(got, tc.err) {
				t.Error("classified error should wrap its cause")
			}
		})
	}
}

func TestClassify_KeepsExistingKind(t *testing.T) {
	orig := providerFormatError("no choices")
	wrapped := fmt.Errorf("outer: %w", orig)

	if got := classify(wrapped); got != wrapped {
		t.Fatalf("expected error returned unchanged, got %v", got)
	}
	if classify(nil) != nil {
		t.Fatal("classify(nil) should be nil")
	}
}

func TestChatError_Message(t *testing.T) {
	err := NewValidationError("Message is required")
	if err.Error() != "Message is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if KindOf(err) != KindValidation {
		t.Errorf("kind = %q", KindOf(err))
	}
	if (&ChatError{Kind: KindNetwork}).Error() != "network" {
		t.Error("expected kind as message when no cause is set")
	}
}

func TestMissingKeyGateway(t *testing.T) {
	var gw Gateway = MissingKeyGateway{}

	_, err := gw.Complete(context.Background(), testTurns)
	if KindOf(err) != KindAuthentication {
		t.Fatalf("kind = %q, want %q", KindOf(err), KindAuthentication)
	}
	if err.Error() != "LLM_API_KEY is not set" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
