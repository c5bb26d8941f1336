package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	pkgErrors "todolist/pkg/errors"
)

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// badRequest wraps a binding failure into a 400 listing the violated fields.
func badRequest(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkgErrors.ErrBadRequest.WithDetails(err.Error())
	}

	details := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return pkgErrors.ErrBadRequest.WithDetails(details)
}

// processIDParam binds and validates the :id URI param.
func (h *handler) processIDParam(c *gin.Context) (int, error) {
	var req idReq
	if err := c.ShouldBindUri(&req); err != nil {
		return 0, badRequest(err)
	}
	return *req.ID, nil
}

// processCreateReq binds and validates the create todo request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processListReq binds and validates the list todos query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processUpdateReq binds and validates the update todo request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	req.ID = id
	return req, nil
}
