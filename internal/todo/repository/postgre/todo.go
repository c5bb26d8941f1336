package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"todolist/internal/todo"
	repo "todolist/internal/todo/repository"
	"todolist/pkg/paginator"
)

const todoColumns = `id, title, description, due_date, done`

// pgCheckViolation is the SQLSTATE raised when the id range constraint rejects a row.
const pgCheckViolation = "23514"

// CreateTodo inserts a new Todo row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	const query = `
		INSERT INTO todos (title, description, due_date, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + todoColumns

	t, err := scanTodo(r.db.QueryRow(ctx, query, opt.Title, opt.Description, opt.DueDate, opt.Done))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return todo.Todo{}, fmt.Errorf("%w: %w", repo.ErrFailedToInsert, repo.ErrIDExhausted)
		}
		return todo.Todo{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTodo retrieves a single Todo by ID.
// Returns found == false when no row matches; not-found is never an error.
func (r *implRepository) GetTodo(ctx context.Context, id int) (todo.Todo, bool, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	t, err := scanTodo(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return todo.Todo{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTodo"), err)
		return todo.Todo{}, false, repo.ErrFailedToGet
	}
	return t, true, nil
}

// UpdateTodo replaces title, description, due date and done of an existing row.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, bool, error) {
	const query = `
		UPDATE todos
		SET title = $1, description = $2, due_date = $3, done = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + todoColumns

	t, err := scanTodo(r.db.QueryRow(ctx, query, opt.Title, opt.Description, opt.DueDate, opt.Done, opt.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return todo.Todo{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return todo.Todo{}, false, repo.ErrFailedToUpdate
	}
	return t, true, nil
}

// DeleteTodo removes a Todo by ID and reports whether a row was removed.
func (r *implRepository) DeleteTodo(ctx context.Context, id int) (bool, error) {
	const query = `DELETE FROM todos WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}

// ListTodos returns every Todo ordered by ID in a single statement.
func (r *implRepository) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	todos, err := collectTodos(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	return todos, nil
}

// ListTodosPage filters and windows in SQL. It reads one row past the limit to
// learn whether more rows follow the window.
func (r *implRepository) ListTodosPage(ctx context.Context, opt repo.ListTodosOptions) ([]todo.Todo, bool, error) {
	page := paginator.New(opt.Limit, opt.Offset)
	mods, args := r.buildListPageQuery(opt.Done, page)
	query := fmt.Sprintf(`SELECT %s FROM todos %s`, todoColumns, mods)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodosPage"), err)
		return nil, false, repo.ErrFailedToList
	}
	fetched, err := collectTodos(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTodosPage"), err)
		return nil, false, repo.ErrFailedToList
	}

	res := paginator.Trim(fetched, page)
	return res.Items, res.HasMore, nil
}

func scanTodo(row pgx.Row) (todo.Todo, error) {
	var t todo.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Done)
	return t, err
}

func collectTodos(rows pgx.Rows) ([]todo.Todo, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (todo.Todo, error) {
		return scanTodo(row)
	})
}
