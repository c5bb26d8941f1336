package usecase

import (
	"context"

	"todolist/internal/todo"
	repo "todolist/internal/todo/repository"
)

// Create stores a new Todo and returns it with its assigned ID.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateTodoInput) (todo.CreateTodoOutput, error) {
	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Done:        input.Done,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateTodoOutput{}, err
	}

	return todo.CreateTodoOutput{Todo: t}, nil
}
