package notes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/borealbadger/notes-api/business/v1/note"
	store "github.com/borealbadger/notes-api/persistence/v1/note"
	"github.com/borealbadger/notes-api/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Removes a note permanently
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 204 "No Content"
// @Failure 404 {object} handler.ErrorResponse
// @Router /notes/{id} [delete]
func Delete(s *store.Store) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
		if err != nil {
			return handler.Fail(http.StatusNotFound, handler.CodeNotFound, note.ErrNotFound.Error())
		}

		err = note.Delete(ctx, s, id)

		switch {
		case errors.Is(err, note.ErrNotFound):
			return handler.Fail(http.StatusNotFound, handler.CodeNotFound, err.Error())
		case err != nil:
			return handler.Fail(http.StatusInternalServerError, handler.CodeInternal, err.Error())
		default:
			return handler.Result{
				Status: http.StatusNoContent,
			}
		}
	}
}
