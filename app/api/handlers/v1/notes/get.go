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

// Get godoc
// @Summary Fetch a note
// @Description Fetches a single note by its id
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 404 {object} handler.ErrorResponse
// @Router /notes/{id} [get]
func Get(s *store.Store) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
		if err != nil {
			// a non-numeric id cannot name any note
			return handler.Fail(http.StatusNotFound, handler.CodeNotFound, note.ErrNotFound.Error())
		}

		found, err := note.Find(ctx, s, id)

		switch {
		case errors.Is(err, note.ErrNotFound):
			return handler.Fail(http.StatusNotFound, handler.CodeNotFound, err.Error())
		case err != nil:
			return handler.Fail(http.StatusInternalServerError, handler.CodeInternal, err.Error())
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body:   found,
			}
		}
	}
}
