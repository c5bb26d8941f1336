package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"todolist/internal/todo"
	"todolist/internal/todo/repository"
)

func TestCreateAndDetail(t *testing.T) {
	uc := seed(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, todo.CreateTodoInput{
		Title:       "buy milk",
		Description: "2 liters",
		DueDate:     testDue,
		Done:        false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Todo.ID != 1 {
		t.Errorf("expected id 1, got %d", created.Todo.ID)
	}

	t.Run("Found", func(t *testing.T) {
		out, err := uc.Detail(ctx, created.Todo.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Todo != created.Todo {
			t.Errorf("expected %+v, got %+v", created.Todo, out.Todo)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		if _, err := uc.Detail(ctx, 77); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})
}

func TestCreateStoreError(t *testing.T) {
	storeErr := errors.New("insert failed")
	uc := New(&mockRepo{
		createFn: func(ctx context.Context, opt repository.CreateTodoOptions) (todo.Todo, error) {
			return todo.Todo{}, storeErr
		},
	}, &mockLogger{})

	if _, err := uc.Create(context.Background(), todo.CreateTodoInput{Title: "x"}); !errors.Is(err, storeErr) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Wholesale", func(t *testing.T) {
		uc := seed(t)
		created, _ := uc.Create(ctx, todo.CreateTodoInput{Title: "old", Description: "keep?", DueDate: testDue})

		due := testDue.Add(24 * time.Hour)
		err := uc.Update(ctx, todo.UpdateTodoInput{ID: created.Todo.ID, Title: "new", DueDate: due, Done: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, _ := uc.Detail(ctx, created.Todo.ID)
		want := todo.Todo{ID: created.Todo.ID, Title: "new", Description: "", DueDate: due, Done: true}
		if out.Todo != want {
			t.Errorf("expected %+v, got %+v", want, out.Todo)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := seed(t)
		if err := uc.Update(ctx, todo.UpdateTodoInput{ID: 3, Title: "x"}); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})

	t.Run("Store Error", func(t *testing.T) {
		storeErr := errors.New("update failed")
		uc := New(&mockRepo{
			updateFn: func(ctx context.Context, opt repository.UpdateTodoOptions) (todo.Todo, bool, error) {
				return todo.Todo{}, false, storeErr
			},
		}, &mockLogger{})
		if err := uc.Update(ctx, todo.UpdateTodoInput{ID: 1}); !errors.Is(err, storeErr) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := seed(t, false, false)

	if err := uc.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(ctx, 1); !errors.Is(err, todo.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound on second delete, got %v", err)
	}

	out, err := uc.List(ctx, todo.ListTodosInput{State: "all", Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalInts(ids(out.Items), []int{2}) {
		t.Errorf("expected only id 2 to remain, got %v", ids(out.Items))
	}
}
