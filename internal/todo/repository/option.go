package repository

import "time"

// CreateTodoOptions holds parameters for inserting a new Todo.
type CreateTodoOptions struct {
	Title       string
	Description string
	DueDate     time.Time
	Done        bool
}

// UpdateTodoOptions holds the full replacement for an existing Todo.
type UpdateTodoOptions struct {
	ID          int
	Title       string
	Description string
	DueDate     time.Time
	Done        bool
}

// ListTodosOptions holds filter and window parameters for ListTodosPage.
// A nil Done means no filter.
type ListTodosOptions struct {
	Done   *bool
	Limit  int
	Offset int
}
