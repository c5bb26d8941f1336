package http

import (
	"errors"
	"net/http"

	"todolist/internal/todo"
	"todolist/internal/todo/repository"
	pkgErrors "todolist/pkg/errors"
)

var (
	errTodoNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "todo not found")
	errIDExhausted  = pkgErrors.NewHTTPError(http.StatusInsufficientStorage, "todo id range exhausted")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unmapped becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		return errTodoNotFound
	case errors.Is(err, repository.ErrIDExhausted):
		return errIDExhausted
	default:
		return pkgErrors.ErrInternalServerError
	}
}
