package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound(t *testing.T) {
	err := NotFound("post with ID %s not found", "abc123")

	expected := "post with ID abc123 not found"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("expected error to wrap ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true")
	}

	if IsInternal(err) {
		t.Error("IsInternal should return false for a not-found error")
	}
}

func TestInternalKeepsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp 10.0.0.1:3306: connection refused")
	err := Internal(cause, "failed to create post")

	if err.Error() != "failed to create post" {
		t.Errorf("cause leaked into message: %q", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}

	if !IsInternal(err) {
		t.Error("IsInternal should return true")
	}
}

func TestWrappedKindSurvivesFmtErrorf(t *testing.T) {
	err := fmt.Errorf("restoring: %w", RestoreWindowExpired("post deleted more than 24 hours ago"))

	if !IsRestoreWindowExpired(err) {
		t.Error("IsRestoreWindowExpired should see through fmt.Errorf wrapping")
	}
}

func TestKindsAreDistinct(t *testing.T) {
	kinds := []error{
		ErrValidation,
		ErrConflict,
		ErrUnauthenticated,
		ErrUnauthorized,
		ErrNotFound,
		ErrRestoreWindowExpired,
		ErrInternal,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("kind %v should not match kind %v", a, b)
			}
		}
	}
}
