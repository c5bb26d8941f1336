package usecase

import (
	"context"

	"todolist/internal/todo"
	repo "todolist/internal/todo/repository"
	"todolist/pkg/paginator"
)

// List filters the todos by state, windows the result by limit and offset,
// projects it to list items and classifies it.
func (uc *implUseCase) List(ctx context.Context, input todo.ListTodosInput) (todo.ListTodosOutput, error) {
	state := todo.ParseState(input.State)
	page := paginator.New(input.Limit, input.Offset)

	res, err := uc.window(ctx, state, page)
	if err != nil {
		return todo.ListTodosOutput{}, err
	}

	items := make([]todo.TodoListItem, 0, len(res.Items))
	for _, t := range res.Items {
		items = append(items, t.ListItem())
	}

	return todo.ListTodosOutput{
		Items:   items,
		Outcome: todo.Classify(len(items), res.HasMore),
		State:   state,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: res.HasMore,
	}, nil
}

// window asks the store to filter and window when it can, and otherwise does
// both over one ordered snapshot.
func (uc *implUseCase) window(ctx context.Context, state todo.State, page paginator.Page) (paginator.Result[todo.Todo], error) {
	if pr, ok := uc.repo.(repo.PageRepository); ok {
		todos, hasMore, err := pr.ListTodosPage(ctx, repo.ListTodosOptions{
			Done:   state.DoneFilter(),
			Limit:  page.Limit,
			Offset: page.Offset,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListTodosPage: %v", err)
			return paginator.Result[todo.Todo]{}, err
		}
		return paginator.Result[todo.Todo]{Items: todos, HasMore: hasMore}, nil
	}

	snapshot, err := uc.repo.ListTodos(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return paginator.Result[todo.Todo]{}, err
	}
	return paginator.Apply(state.Filter(snapshot), page), nil
}
