package usecase

import (
	"context"

	"todolist/internal/todo"
	repo "todolist/internal/todo/repository"
)

// Detail retrieves a single Todo by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int) (todo.DetailTodoOutput, error) {
	t, found, err := uc.repo.GetTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTodo: %v", err)
		return todo.DetailTodoOutput{}, err
	}
	if !found {
		return todo.DetailTodoOutput{}, todo.ErrTodoNotFound
	}
	return todo.DetailTodoOutput{Todo: t}, nil
}

// Update replaces every mutable field of an existing Todo. Fields left empty in
// input are stored empty. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateTodoInput) error {
	_, found, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Done:        input.Done,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return err
	}
	if !found {
		return todo.ErrTodoNotFound
	}
	return nil
}

// Delete removes a Todo by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int) error {
	deleted, err := uc.repo.DeleteTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	if !deleted {
		return todo.ErrTodoNotFound
	}
	return nil
}
