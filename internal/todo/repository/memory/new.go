package memory

import (
	"fmt"
	"sync"

	"todolist/internal/todo"
	"todolist/internal/todo/repository"
	"todolist/pkg/log"
)

type implRepository struct {
	mu     sync.RWMutex
	todos  map[int]todo.Todo
	nextID int
	l      log.Logger
}

// New creates an in-memory Repository. IDs start at 1 and are never reused.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		todos:  make(map[int]todo.Todo),
		nextID: 1,
		l:      l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/memory.%s", method)
}
