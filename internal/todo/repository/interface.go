package repository

import (
	"context"

	"todolist/internal/todo"
)

// Repository is the composed interface for the todo data store.
type Repository interface {
	TodoRepository
}

// TodoRepository defines the data access methods for the Todo entity.
// Get/Update/Delete report absence through the bool result, never through an error.
type TodoRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (todo.Todo, error)
	GetTodo(ctx context.Context, id int) (todo.Todo, bool, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (todo.Todo, bool, error)
	DeleteTodo(ctx context.Context, id int) (bool, error)
	// ListTodos returns a snapshot of every todo ordered by ascending ID.
	ListTodos(ctx context.Context) ([]todo.Todo, error)
}

// PageRepository is implemented by stores that can filter and window in the query itself.
type PageRepository interface {
	ListTodosPage(ctx context.Context, opt ListTodosOptions) ([]todo.Todo, bool, error)
}

// Pinger is implemented by stores with a reachable backend.
type Pinger interface {
	Ping(ctx context.Context) error
}
