package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRunMain_SuccessExitsZero(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := runMain(func() error { return nil }, &out); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected stderr output: %q", out.String())
	}
}

func TestExitCodeForError_PlainError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := exitCodeForError(errors.New("boom"), &out); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := out.String(); got != "boom\n" {
		t.Fatalf("stderr = %q, want %q", got, "boom\n")
	}
}

func TestExitCodeForError_Canceled(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := exitCodeForError(context.Canceled, &out); code != 130 {
		t.Fatalf("exit code = %d, want 130", code)
	}
	if got := out.String(); got != "canceled\n" {
		t.Fatalf("stderr = %q, want %q", got, "canceled\n")
	}
}

func TestExitCodeForError_ExitError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := fmt.Errorf("wrapped: %w", &exitError{code: 130, err: context.Canceled, silent: true})
	if code := exitCodeForError(err, &out); code != 130 {
		t.Fatalf("exit code = %d, want 130", code)
	}
	if out.Len() != 0 {
		t.Fatalf("silent exitError should not print, got %q", out.String())
	}

	out.Reset()
	if code := exitCodeForError(&exitError{code: 3, err: errors.New("bad plan")}, &out); code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
	if got := out.String(); got != "bad plan\n" {
		t.Fatalf("stderr = %q, want %q", got, "bad plan\n")
	}
}
