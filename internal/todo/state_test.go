package todo_test

import (
	"testing"

	"todolist/internal/todo"
)

func TestParseState(t *testing.T) {
	tests := map[string]todo.State{
		"all":        todo.StateAll,
		"unfinished": todo.StateUnfinished,
		"":           todo.StateUnfinished,
		"ALL":        todo.StateUnfinished,
		"done":       todo.StateUnfinished,
	}
	for name, want := range tests {
		if got := todo.ParseState(name); got != want {
			t.Errorf("ParseState(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestStateFilter(t *testing.T) {
	todos := []todo.Todo{
		{ID: 1, Done: false},
		{ID: 2, Done: true},
		{ID: 3, Done: false},
		{ID: 4, Done: true},
	}

	t.Run("Unfinished Keeps Order", func(t *testing.T) {
		got := todo.StateUnfinished.Filter(todos)
		if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
			t.Errorf("unexpected filter result: %+v", got)
		}
	})

	t.Run("All Unchanged", func(t *testing.T) {
		got := todo.StateAll.Filter(todos)
		if len(got) != len(todos) {
			t.Fatalf("expected %d todos, got %d", len(todos), len(got))
		}
		for i := range got {
			if got[i].ID != todos[i].ID {
				t.Errorf("order changed at %d: %d != %d", i, got[i].ID, todos[i].ID)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := todo.StateUnfinished.Filter(todos)
		twice := todo.StateUnfinished.Filter(once)
		if len(once) != len(twice) {
			t.Fatalf("filtering twice changed length: %d != %d", len(once), len(twice))
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Errorf("filtering twice changed element %d", i)
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := todo.StateUnfinished.Filter(nil); len(got) != 0 {
			t.Errorf("expected empty result, got %+v", got)
		}
	})
}

func TestDoneFilter(t *testing.T) {
	if todo.StateAll.DoneFilter() != nil {
		t.Error("all must not filter on done")
	}
	f := todo.StateUnfinished.DoneFilter()
	if f == nil || *f {
		t.Errorf("unfinished must filter on done=false, got %v", f)
	}
}
