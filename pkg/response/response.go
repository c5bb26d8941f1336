package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "todolist/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// PartialContent sends 206 JSON with data; more results exist past this one.
func PartialContent(c *gin.Context, data any) {
	c.JSON(http.StatusPartialContent, NewOKResp(data))
}

// NoContent sends 204 without a body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends the status carried by an HTTPError, or 500 for anything else.
func Error(c *gin.Context, err error) {
	he, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}

	c.JSON(he.StatusCode, Resp{
		ErrorCode: he.StatusCode,
		Message:   he.Message,
		Errors:    he.Details,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// AbortWithError writes the error response and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
