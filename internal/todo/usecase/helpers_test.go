package usecase

import (
	"context"
	"testing"
	"time"

	"todolist/internal/todo"
	"todolist/internal/todo/repository"
	"todolist/internal/todo/repository/memory"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is a function-field fake; nil fields fall back to zero values.
type mockRepo struct {
	createFn func(ctx context.Context, opt repository.CreateTodoOptions) (todo.Todo, error)
	getFn    func(ctx context.Context, id int) (todo.Todo, bool, error)
	updateFn func(ctx context.Context, opt repository.UpdateTodoOptions) (todo.Todo, bool, error)
	deleteFn func(ctx context.Context, id int) (bool, error)
	listFn   func(ctx context.Context) ([]todo.Todo, error)
}

func (m *mockRepo) CreateTodo(ctx context.Context, opt repository.CreateTodoOptions) (todo.Todo, error) {
	if m.createFn != nil {
		return m.createFn(ctx, opt)
	}
	return todo.Todo{}, nil
}

func (m *mockRepo) GetTodo(ctx context.Context, id int) (todo.Todo, bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return todo.Todo{}, false, nil
}

func (m *mockRepo) UpdateTodo(ctx context.Context, opt repository.UpdateTodoOptions) (todo.Todo, bool, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, opt)
	}
	return todo.Todo{}, false, nil
}

func (m *mockRepo) DeleteTodo(ctx context.Context, id int) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

func (m *mockRepo) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// mockPageRepo adds a pushed-down page query and records the options it saw.
type mockPageRepo struct {
	mockRepo
	pageFn  func(ctx context.Context, opt repository.ListTodosOptions) ([]todo.Todo, bool, error)
	lastOpt repository.ListTodosOptions
}

func (m *mockPageRepo) ListTodosPage(ctx context.Context, opt repository.ListTodosOptions) ([]todo.Todo, bool, error) {
	m.lastOpt = opt
	return m.pageFn(ctx, opt)
}

var testDue = time.Date(2019, 3, 17, 16, 6, 38, 445_000_000, time.UTC)

// seed returns a memory-backed use case holding one todo per entry of done, in order.
func seed(t *testing.T, done ...bool) *implUseCase {
	t.Helper()
	l := &mockLogger{}
	repo := memory.New(l)
	for i, d := range done {
		if _, err := repo.CreateTodo(context.Background(), repository.CreateTodoOptions{
			Title:   "todo",
			DueDate: testDue.Add(time.Duration(i) * time.Hour),
			Done:    d,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return New(repo, l)
}
