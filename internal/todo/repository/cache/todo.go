package cache

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"todolist/internal/todo"
	repo "todolist/internal/todo/repository"
)

type cachedTodo struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Done        bool      `json:"done"`
}

func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	t, err := r.next.CreateTodo(ctx, opt)
	if err != nil {
		return t, err
	}
	r.invalidate(ctx)
	return t, nil
}

func (r *implRepository) GetTodo(ctx context.Context, id int) (todo.Todo, bool, error) {
	return r.next.GetTodo(ctx, id)
}

func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, bool, error) {
	t, found, err := r.next.UpdateTodo(ctx, opt)
	if err != nil || !found {
		return t, found, err
	}
	r.invalidate(ctx)
	return t, true, nil
}

func (r *implRepository) DeleteTodo(ctx context.Context, id int) (bool, error) {
	deleted, err := r.next.DeleteTodo(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	r.invalidate(ctx)
	return true, nil
}

// ListTodos serves the snapshot of the current generation from Redis, loading it
// from the wrapped store on a miss. Concurrent misses share one load, which is
// detached from the cancellation of whichever caller started it. Every caller
// gets its own slice.
func (r *implRepository) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	gen, err := r.generation(ctx)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("generation"), err)
		return r.next.ListTodos(ctx)
	}

	key := snapshotKey(gen)
	ch := r.sf.DoChan(key, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)
		if todos, ok := r.get(loadCtx, key); ok {
			return todos, nil
		}

		todos, err := r.next.ListTodos(loadCtx)
		if err != nil {
			return nil, err
		}
		r.set(loadCtx, key, todos)
		return todos, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]todo.Todo)), nil
	}
}

// generation reads the counter bumped by every write. An unset counter is generation 0.
func (r *implRepository) generation(ctx context.Context) (int64, error) {
	gen, err := r.rdb.Get(ctx, keyGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *implRepository) get(ctx context.Context, key string) ([]todo.Todo, bool) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("get"), err)
		return nil, false
	}

	var cached []cachedTodo
	if err := json.Unmarshal(b, &cached); err != nil {
		r.l.Warnf(ctx, "%s decode: %v", r.dsn("get"), err)
		return nil, false
	}

	todos := make([]todo.Todo, 0, len(cached))
	for _, c := range cached {
		todos = append(todos, todo.Todo{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			DueDate:     c.DueDate,
			Done:        c.Done,
		})
	}
	return todos, true
}

func (r *implRepository) set(ctx context.Context, key string, todos []todo.Todo) {
	cached := make([]cachedTodo, 0, len(todos))
	for _, t := range todos {
		cached = append(cached, cachedTodo{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Done:        t.Done,
		})
	}

	b, err := json.Marshal(cached)
	if err != nil {
		r.l.Warnf(ctx, "%s encode: %v", r.dsn("set"), err)
		return
	}
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("set"), err)
	}
}

// invalidate moves readers to a new generation. A failure leaves a stale entry until the TTL expires.
func (r *implRepository) invalidate(ctx context.Context) {
	if err := r.rdb.Incr(ctx, keyGeneration).Err(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("invalidate"), err)
	}
}
