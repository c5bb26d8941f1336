package http

import (
	"time"

	"todolist/internal/todo"
	"todolist/pkg/response"
)

// --- Request DTOs ---

// todoBody is the JSON body shared by create and update.
// DueDate and Done are pointers so that absence fails `required` while false and
// any real timestamp pass.
type todoBody struct {
	Title       string     `json:"title"       binding:"required,min=1,max=30"`
	Description string     `json:"description" binding:"max=500"`
	DueDate     *time.Time `json:"dueDate"     binding:"required"`
	Done        *bool      `json:"done"        binding:"required"`
}

type createReq struct {
	todoBody
}

func (r createReq) toInput() todo.CreateTodoInput {
	return todo.CreateTodoInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     *r.DueDate,
		Done:        *r.Done,
	}
}

// ---

type idReq struct {
	ID *int `uri:"id" binding:"required,min=0,max=1000000"`
}

// ---

type listReq struct {
	State  string `form:"state"`
	Limit  *int   `form:"limit"  binding:"omitempty,min=0,max=10"`
	Offset *int   `form:"offset" binding:"omitempty,min=0,max=100"`
}

func (r listReq) toInput() todo.ListTodosInput {
	limit := todo.DefaultLimit
	if r.Limit != nil {
		limit = *r.Limit
	}
	offset := todo.DefaultOffset
	if r.Offset != nil {
		offset = *r.Offset
	}
	return todo.ListTodosInput{
		State:  r.State,
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	ID int `json:"-"` // populated from URI param
	todoBody
}

func (r updateReq) toInput() todo.UpdateTodoInput {
	return todo.UpdateTodoInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     *r.DueDate,
		Done:        *r.Done,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     response.DateTime `json:"dueDate"`
	Done        bool              `json:"done"`
}

func newTodoResp(t todo.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     response.DateTime(t.DueDate),
		Done:        t.Done,
	}
}

type todoListItemResp struct {
	ID      int               `json:"id"`
	Title   string            `json:"title"`
	DueDate response.DateTime `json:"dueDate"`
	Done    bool              `json:"done"`
}

type listResp struct {
	Items   []todoListItemResp `json:"items"`
	State   string             `json:"state"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	HasMore bool               `json:"hasMore"`
}

func (h *handler) newListResp(out todo.ListTodosOutput) listResp {
	items := make([]todoListItemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = todoListItemResp{
			ID:      it.ID,
			Title:   it.Title,
			DueDate: response.DateTime(it.DueDate),
			Done:    it.Done,
		}
	}
	return listResp{
		Items:   items,
		State:   out.State.String(),
		Limit:   out.Limit,
		Offset:  out.Offset,
		HasMore: out.HasMore,
	}
}
