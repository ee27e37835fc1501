package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf_MapsErrorClasses(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NewInvalidInput("Only PDF files are allowed"), http.StatusBadRequest},
		{NewNotFound("PDF not found"), http.StatusNotFound},
		{NewExtractionError("PDF extraction failed", errors.New("bad xref")), http.StatusInternalServerError},
		{NewStoreError("failed to insert document", errors.New("conn reset")), http.StatusInternalServerError},
		{NewGenerationError("Query failed", errors.New("timeout")), http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := StatusOf(c.err); got != c.status {
			t.Fatalf("StatusOf(%v) = %d, want %d", c.err, got, c.status)
		}
	}
}

func TestStatusOf_SeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("summarize: %w", NewNotFound("PDF not found"))
	if got := StatusOf(err); got != http.StatusNotFound {
		t.Fatalf("expected 404 through wrapping, got %d", got)
	}
}

func TestAppError_KeepsCollaboratorMessage(t *testing.T) {
	cause := errors.New("no such host")
	err := NewGenerationError("LLM summarization failed", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected unwrap to reach the cause")
	}
	msg := err.Error()
	if msg != "LLM summarization failed: no such host" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
