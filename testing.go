package graphbuild

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hanpama/graphbuild/executor"
)

// ExpectData executes a query against the schema and fails the test unless
// it succeeds with exactly the wanted data.
func ExpectData(t testing.TB, s *Schema, query string, variables map[string]any, want map[string]any) {
	t.Helper()
	result := s.Execute(context.Background(), executor.Request{Query: query, Variables: variables})
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if diff := cmp.Diff(want, result.Data); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}

// ExpectErrors executes a query against the schema and fails the test unless
// the error messages match exactly, in order.
func ExpectErrors(t testing.TB, s *Schema, query string, variables map[string]any, want []string) {
	t.Helper()
	result := s.Execute(context.Background(), executor.Request{Query: query, Variables: variables})
	got := make([]string, len(result.Errors))
	for i, err := range result.Errors {
		got[i] = err.Message
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("error mismatch (-want +got):\n%s", diff)
	}
}

// ExpectValidationError executes a query against the schema and fails the
// test unless it reports exactly one argument validation error carrying the
// wanted messages in its extensions.
func ExpectValidationError(t testing.TB, s *Schema, query string, variables map[string]any, want ByField) {
	t.Helper()
	result := s.Execute(context.Background(), executor.Request{Query: query, Variables: variables})
	if len(result.Errors) != 1 {
		t.Fatalf("expected one error, got %v", result.Errors)
	}
	err := result.Errors[0]
	if err.Message != ValidationMessage {
		t.Fatalf("expected a validation error, got %q", err.Message)
	}
	if diff := cmp.Diff(messageValue(want), any(err.Extensions)); diff != "" {
		t.Fatalf("extensions mismatch (-want +got):\n%s", diff)
	}
}
