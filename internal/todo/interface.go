package todo

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateTodoInput) (CreateTodoOutput, error)
	List(ctx context.Context, input ListTodosInput) (ListTodosOutput, error)
	Detail(ctx context.Context, id int) (DetailTodoOutput, error)
	Update(ctx context.Context, input UpdateTodoInput) error
	Delete(ctx context.Context, id int) error
}
