package usecase

import (
	"context"
	"errors"
	"testing"

	"todolist/internal/todo"
	"todolist/internal/todo/repository"
)

func ids(items []todo.TodoListItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestList(t *testing.T) {
	tests := []struct {
		name        string
		done        []bool
		input       todo.ListTodosInput
		wantIDs     []int
		wantHasMore bool
		wantOutcome todo.Outcome
	}{
		{
			name:        "Five Unfinished Fill One Page",
			done:        []bool{false, false, false, false, false},
			input:       todo.ListTodosInput{State: "unfinished", Limit: 5, Offset: 0},
			wantIDs:     []int{1, 2, 3, 4, 5},
			wantOutcome: todo.OutcomeComplete,
		},
		{
			name:        "Empty Store",
			input:       todo.ListTodosInput{State: "all", Limit: 5, Offset: 3},
			wantIDs:     []int{},
			wantOutcome: todo.OutcomeEmpty,
		},
		{
			name:        "Unfinished Skips Done",
			done:        []bool{false, true, false},
			input:       todo.ListTodosInput{State: "unfinished", Limit: 5, Offset: 0},
			wantIDs:     []int{1, 3},
			wantOutcome: todo.OutcomeComplete,
		},
		{
			name:        "All With More Remaining",
			done:        []bool{false, true, false, true, false},
			input:       todo.ListTodosInput{State: "all", Limit: 2, Offset: 0},
			wantIDs:     []int{1, 2},
			wantHasMore: true,
			wantOutcome: todo.OutcomePartial,
		},
		{
			name:        "All From Offset",
			done:        []bool{false, true, false},
			input:       todo.ListTodosInput{State: "all", Limit: 5, Offset: 1},
			wantIDs:     []int{2, 3},
			wantOutcome: todo.OutcomeComplete,
		},
		{
			name:        "Unknown State Means Unfinished",
			done:        []bool{true, false},
			input:       todo.ListTodosInput{State: "bogus", Limit: 5, Offset: 0},
			wantIDs:     []int{2},
			wantOutcome: todo.OutcomeComplete,
		},
		{
			name:        "Zero Limit With Records Is Empty",
			done:        []bool{false, false},
			input:       todo.ListTodosInput{State: "all", Limit: 0, Offset: 0},
			wantIDs:     []int{},
			wantHasMore: true,
			wantOutcome: todo.OutcomeEmpty,
		},
		{
			name:        "Offset Past End",
			done:        []bool{false, false},
			input:       todo.ListTodosInput{State: "all", Limit: 5, Offset: 2},
			wantIDs:     []int{},
			wantOutcome: todo.OutcomeEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := seed(t, tt.done...)

			out, err := uc.List(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ids(out.Items); !equalInts(got, tt.wantIDs) {
				t.Errorf("expected ids %v, got %v", tt.wantIDs, got)
			}
			if out.HasMore != tt.wantHasMore {
				t.Errorf("expected hasMore %v, got %v", tt.wantHasMore, out.HasMore)
			}
			if out.Outcome != tt.wantOutcome {
				t.Errorf("expected outcome %s, got %s", tt.wantOutcome, out.Outcome)
			}
			if out.Limit != tt.input.Limit || out.Offset != tt.input.Offset {
				t.Errorf("expected window echo %d/%d, got %d/%d", tt.input.Limit, tt.input.Offset, out.Limit, out.Offset)
			}
		})
	}
}

func TestListProperties(t *testing.T) {
	done := []bool{false, true, true, false, false, true, false, false, true, false, false, false}
	uc := seed(t, done...)

	unfinished := 0
	for _, d := range done {
		if !d {
			unfinished++
		}
	}
	totals := map[string]int{"all": len(done), "unfinished": unfinished}

	for state, total := range totals {
		for limit := 0; limit <= todo.MaxLimit; limit++ {
			for offset := 0; offset <= total+2; offset++ {
				out, err := uc.List(context.Background(), todo.ListTodosInput{State: state, Limit: limit, Offset: offset})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				n := len(out.Items)
				if n > limit {
					t.Fatalf("%s %d/%d: window %d exceeds limit", state, limit, offset, n)
				}
				if n > max(0, total-offset) {
					t.Fatalf("%s %d/%d: window %d exceeds remainder", state, limit, offset, n)
				}
				if out.HasMore != (offset+n < total) {
					t.Fatalf("%s %d/%d: hasMore %v inconsistent", state, limit, offset, out.HasMore)
				}
				if out.Outcome != todo.Classify(n, out.HasMore) {
					t.Fatalf("%s %d/%d: outcome %s not derived from window", state, limit, offset, out.Outcome)
				}
				for i := 1; i < n; i++ {
					if out.Items[i-1].ID >= out.Items[i].ID {
						t.Fatalf("%s %d/%d: items out of id order", state, limit, offset)
					}
				}
				if state == "unfinished" {
					for _, it := range out.Items {
						if it.Done {
							t.Fatalf("%s %d/%d: done item %d leaked", state, limit, offset, it.ID)
						}
					}
				}
			}
		}
	}
}

func TestListUsesPageRepository(t *testing.T) {
	rows := []todo.Todo{{ID: 4, Title: "a"}, {ID: 9, Title: "b"}}
	repo := &mockPageRepo{
		pageFn: func(ctx context.Context, opt repository.ListTodosOptions) ([]todo.Todo, bool, error) {
			return rows, true, nil
		},
	}
	repo.listFn = func(ctx context.Context) ([]todo.Todo, error) {
		t.Fatal("snapshot must not be read when the store pages itself")
		return nil, nil
	}
	uc := New(repo, &mockLogger{})

	t.Run("Unfinished Filters On Done", func(t *testing.T) {
		out, err := uc.List(context.Background(), todo.ListTodosInput{State: "unfinished", Limit: 2, Offset: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastOpt.Done == nil || *repo.lastOpt.Done {
			t.Errorf("expected done=false filter, got %v", repo.lastOpt.Done)
		}
		if repo.lastOpt.Limit != 2 || repo.lastOpt.Offset != 6 {
			t.Errorf("expected 2/6, got %d/%d", repo.lastOpt.Limit, repo.lastOpt.Offset)
		}
		if out.Outcome != todo.OutcomePartial || !equalInts(ids(out.Items), []int{4, 9}) {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("All Has No Filter", func(t *testing.T) {
		if _, err := uc.List(context.Background(), todo.ListTodosInput{State: "all", Limit: 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastOpt.Done != nil {
			t.Errorf("expected no done filter, got %v", *repo.lastOpt.Done)
		}
	})

	t.Run("Store Error", func(t *testing.T) {
		storeErr := errors.New("boom")
		repo.pageFn = func(ctx context.Context, opt repository.ListTodosOptions) ([]todo.Todo, bool, error) {
			return nil, false, storeErr
		}
		if _, err := uc.List(context.Background(), todo.ListTodosInput{}); !errors.Is(err, storeErr) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func TestListSnapshotError(t *testing.T) {
	storeErr := errors.New("boom")
	uc := New(&mockRepo{
		listFn: func(ctx context.Context) ([]todo.Todo, error) { return nil, storeErr },
	}, &mockLogger{})

	if _, err := uc.List(context.Background(), todo.ListTodosInput{State: "all", Limit: 5}); !errors.Is(err, storeErr) {
		t.Errorf("expected store error, got %v", err)
	}
}
