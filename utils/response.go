package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body: a category string taken from the
// HTTP status text plus a human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Fail writes an error response for the given status code.
func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// NotFound writes a 404 response.
func NotFound(ctx *gin.Context, message string) {
	Fail(ctx, http.StatusNotFound, message)
}

// BadRequest writes a 400 response.
func BadRequest(ctx *gin.Context, message string) {
	Fail(ctx, http.StatusBadRequest, message)
}

// InternalError logs the underlying failure and writes a 500 response without
// leaking store details to the client.
func InternalError(ctx *gin.Context, err error) {
	if Sugar != nil {
		Sugar.Errorf("request %s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	}
	Fail(ctx, http.StatusInternalServerError, "internal error")
}
