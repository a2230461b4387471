package domerr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/oinseo/ywdom/domerr"
)

func TestDOMException(t *testing.T) {
	t.Parallel()

	t.Run("uses the default message when none is given", func(t *testing.T) {
		exc := domerr.New(domerr.NotFoundError, "")
		if exc.Message != domerr.DefaultMessage(domerr.NotFoundError) {
			t.Errorf("Message = %q, want default message", exc.Message)
		}
	})

	t.Run("keeps a caller-supplied message", func(t *testing.T) {
		exc := domerr.New(domerr.HierarchyRequestError, "node is its own ancestor")
		if exc.Message != "node is its own ancestor" {
			t.Errorf("Message = %q, want custom message", exc.Message)
		}
	})

	t.Run("Error includes name, message and origin", func(t *testing.T) {
		exc := domerr.New(domerr.InvalidCharacterError, "bad qualified name")
		got := exc.Error()
		if !strings.HasPrefix(got, "InvalidCharacterError: bad qualified name (at ") {
			t.Errorf("Error() = %q, want it to start with the name and message", got)
		}
		if exc.Origin.File == "" {
			t.Error("Origin.File should be populated")
		}
		if exc.Origin.Line == 0 {
			t.Error("Origin.Line should be populated")
		}
	})
}

func TestExceptions(t *testing.T) {
	t.Parallel()

	t.Run("empty collection", func(t *testing.T) {
		excs := domerr.Exceptions{}
		if got, want := excs.Error(), "no exceptions"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("single exception", func(t *testing.T) {
		excs := domerr.Exceptions{domerr.New(domerr.NotFoundError, "missing child")}
		if got, want := excs.Error(), excs[0].Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("multiple exceptions", func(t *testing.T) {
		excs := domerr.Exceptions{
			domerr.New(domerr.HierarchyRequestError, "first"),
			domerr.New(domerr.NotFoundError, "second"),
		}
		result := excs.Error()
		if !strings.HasPrefix(result, "2 exceptions:\n") {
			t.Errorf("Error() should start with the count, got %q", result)
		}
		if !strings.Contains(result, "HierarchyRequestError: first") {
			t.Error("Error() should contain the first exception")
		}
		if !strings.Contains(result, "NotFoundError: second") {
			t.Error("Error() should contain the second exception")
		}
	})

	t.Run("Unwrap returns error slice", func(t *testing.T) {
		e1 := domerr.New(domerr.NotFoundError, "e1")
		e2 := domerr.New(domerr.HierarchyRequestError, "e2")
		excs := domerr.Exceptions{e1, e2}

		unwrapped := excs.Unwrap()
		if len(unwrapped) != 2 {
			t.Fatalf("Unwrap() returned %d errors, want 2", len(unwrapped))
		}
		if !errors.Is(unwrapped[0], e1) {
			t.Error("Unwrap()[0] should be e1")
		}
		if !errors.Is(unwrapped[1], e2) {
			t.Error("Unwrap()[1] should be e2")
		}
	})
}

func TestDefaultMessage(t *testing.T) {
	t.Parallel()

	t.Run("known name", func(t *testing.T) {
		if msg := domerr.DefaultMessage(domerr.HierarchyRequestError); msg == "" {
			t.Error("DefaultMessage() should return a non-empty string for a known name")
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if msg := domerr.DefaultMessage("NotARealError"); msg != "" {
			t.Errorf("DefaultMessage() = %q, want empty string for unknown name", msg)
		}
	})
}
