package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/borealbadger/notes-api/sys"
)

// Machine-readable error codes carried in every error body
const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeInternal   = "internal_error"
)

// Result carries the status and body a handler produced
type Result struct {
	Status int
	Body   any
}

// Error is the inner error payload
type Error struct {
	Code    string `json:"code" example:"not_found"`
	Message string `json:"message" example:"note not found"`
}

// ErrorResponse is the uniform error body shape
type ErrorResponse struct {
	Error Error `json:"error"`
}

// Fail builds an error Result with the uniform body shape
func Fail(status int, code, message string) Result {
	return Result{
		Status: status,
		Body: ErrorResponse{
			Error: Error{
				Code:    code,
				Message: message,
			},
		},
	}
}

// Wrapper adapts a Result returning handler into a gin handler.
// A Result without a body writes the status only, so 204 stays bodyless.
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Status >= http.StatusInternalServerError {
			sys.R.Log.Errorw("request failed",
				"method", ctx.Request.Method,
				"path", ctx.Request.URL.Path,
				"status", result.Status,
			)
		}
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}
