package http

import (
	"todolist/internal/todo"
	"todolist/pkg/log"
)

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
