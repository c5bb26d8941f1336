package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "todolist/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusNotFound, "todo not found"))
		he, ok := pkgErrors.AsHTTPError(err)
		if !ok {
			t.Fatal("expected HTTPError in chain")
		}
		if he.StatusCode != http.StatusNotFound || he.Message != "todo not found" {
			t.Errorf("unexpected error: %+v", he)
		}
	})

	t.Run("Plain Error", func(t *testing.T) {
		if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("boom")); ok {
			t.Error("plain error should not convert")
		}
	})

	t.Run("WithDetails Copies", func(t *testing.T) {
		base := pkgErrors.ErrBadRequest
		detailed := base.WithDetails([]string{"title"})
		if base.Details != nil {
			t.Error("WithDetails must not mutate the shared error")
		}
		if detailed.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", detailed.StatusCode)
		}
	})
}
