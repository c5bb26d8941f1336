package todo

import "time"

// --- Todo Domain Model ---

const (
	MinID = 0
	MaxID = 1_000_000

	MaxTitleLength       = 30
	MaxDescriptionLength = 500

	DefaultLimit  = 5
	MaxLimit      = 10
	DefaultOffset = 0
	MaxOffset     = 100
)

// Todo is the full record held by the store. ID is assigned on creation and never changes.
type Todo struct {
	ID          int
	Title       string
	Description string
	DueDate     time.Time
	Done        bool
}

// TodoListItem is the projection returned by list queries; it omits Description.
type TodoListItem struct {
	ID      int
	Title   string
	DueDate time.Time
	Done    bool
}

// ListItem projects t to its list shape.
func (t Todo) ListItem() TodoListItem {
	return TodoListItem{
		ID:      t.ID,
		Title:   t.Title,
		DueDate: t.DueDate,
		Done:    t.Done,
	}
}

// --- UseCase Inputs ---

type CreateTodoInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Done        bool
}

type ListTodosInput struct {
	State  string
	Limit  int
	Offset int
}

// UpdateTodoInput replaces every mutable field of the todo with ID.
type UpdateTodoInput struct {
	ID          int
	Title       string
	Description string
	DueDate     time.Time
	Done        bool
}

// --- UseCase Outputs ---

type CreateTodoOutput struct {
	Todo Todo
}

type ListTodosOutput struct {
	Items   []TodoListItem
	Outcome Outcome
	State   State
	Limit   int
	Offset  int
	HasMore bool
}

type DetailTodoOutput struct {
	Todo Todo
}
