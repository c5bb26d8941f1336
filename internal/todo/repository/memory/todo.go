package memory

import (
	"context"
	"fmt"
	"slices"

	"todolist/internal/todo"
	repo "todolist/internal/todo/repository"
)

// CreateTodo stores a new Todo under the next free ID.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nextID > todo.MaxID {
		r.l.Errorf(ctx, "%s: next id %d exceeds %d", r.dsn("CreateTodo"), r.nextID, todo.MaxID)
		return todo.Todo{}, fmt.Errorf("%w: %w", repo.ErrFailedToInsert, repo.ErrIDExhausted)
	}

	t := todo.Todo{
		ID:          r.nextID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Done:        opt.Done,
	}
	r.todos[t.ID] = t
	r.nextID++
	return t, nil
}

// GetTodo returns the Todo with id; found is false when absent.
func (r *implRepository) GetTodo(ctx context.Context, id int) (todo.Todo, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.todos[id]
	return t, ok, nil
}

// UpdateTodo replaces every mutable field of an existing Todo.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[opt.ID]; !ok {
		return todo.Todo{}, false, nil
	}

	t := todo.Todo{
		ID:          opt.ID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Done:        opt.Done,
	}
	r.todos[opt.ID] = t
	return t, true, nil
}

// DeleteTodo removes a Todo by ID.
func (r *implRepository) DeleteTodo(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return false, nil
	}
	delete(r.todos, id)
	return true, nil
}

// ListTodos copies every Todo under the read lock and orders the copy by ID.
func (r *implRepository) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	r.mu.RLock()
	out := make([]todo.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		out = append(out, t)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b todo.Todo) int { return a.ID - b.ID })
	return out, nil
}
