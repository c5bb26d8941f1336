package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"todolist/internal/todo"
	"todolist/pkg/response"
)

const (
	headerHasMore       = "X-Has-More"
	headerTotalReturned = "X-Total-Returned"
)

// Create godoc
// @Summary     Create a todo
// @Description Creates a todo and returns it with its assigned id.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     201  {object} response.Resp{data=todoResp}
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTodoResp(output.Todo))
}

// List godoc
// @Summary     List todos
// @Description Returns a window of todos in id order. 200 when the window is the last one,
// @Description 206 when more todos follow it, 204 when the window is empty.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       state  query string false "unfinished (default) or all"
// @Param       limit  query int    false "Window size 0-10 (default: 5)"
// @Param       offset query int    false "Records to skip 0-100 (default: 0)"
// @Success     200 {object} response.Resp{data=listResp}
// @Success     204 "No todos in the window"
// @Success     206 {object} response.Resp{data=listResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header(headerHasMore, strconv.FormatBool(output.HasMore))
	c.Header(headerTotalReturned, strconv.Itoa(len(output.Items)))

	switch output.Outcome {
	case todo.OutcomeEmpty:
		response.NoContent(c)
	case todo.OutcomePartial:
		response.PartialContent(c, h.newListResp(output))
	default:
		response.OK(c, h.newListResp(output))
	}
}

// Detail godoc
// @Summary     Get a todo
// @Description Returns a single todo by its id.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id path int true "Todo ID"
// @Success     200 {object} response.Resp{data=todoResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}

// Update godoc
// @Summary     Replace a todo
// @Description Replaces title, description, dueDate and done of an existing todo.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path int      true "Todo ID"
// @Param       body body createReq true "Replacement fields"
// @Success     204 "Updated"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary     Delete a todo
// @Description Permanently removes a todo by id.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id path int true "Todo ID"
// @Success     204 "Deleted"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
