package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/borealbadger/notes-api/business/v1/note"
	store "github.com/borealbadger/notes-api/persistence/v1/note"
	"github.com/borealbadger/notes-api/platform/web/handler"
	"github.com/borealbadger/notes-api/sys"
)

// List godoc
// @Summary List notes
// @Description Lists notes in insertion order with offset/limit pagination
// @Tags Note
// @Produce json
// @Param limit query int false "Page size, defaults to 10, max 100"
// @Param offset query int false "Items to skip, defaults to 0"
// @Success 200 {object} note.Page
// @Failure 400 {object} handler.ErrorResponse
// @Router /notes [get]
func List(s *store.Store) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		limit := sys.Configs.Notes.DefaultLimit
		if raw := ctx.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return handler.Fail(http.StatusBadRequest, handler.CodeValidation, "limit must be an integer")
			}
			limit = parsed
		}

		offset := 0
		if raw := ctx.Query("offset"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return handler.Fail(http.StatusBadRequest, handler.CodeValidation, "offset must be an integer")
			}
			offset = parsed
		}

		page, err := note.List(ctx, s, limit, offset)

		switch {
		case note.IsValidation(err):
			return handler.Fail(http.StatusBadRequest, handler.CodeValidation, err.Error())
		case err != nil:
			return handler.Fail(http.StatusInternalServerError, handler.CodeInternal, err.Error())
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body:   page,
			}
		}
	}
}
