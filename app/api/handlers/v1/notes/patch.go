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

// Patch godoc
// @Summary Partially update a note
// @Description Updates only the supplied fields of a note
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param patch body note.NotePatch true "Fields to update"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Failure 422 {object} handler.ErrorResponse
// @Router /notes/{id} [patch]
func Patch(s *store.Store) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
		if err != nil {
			return handler.Fail(http.StatusNotFound, handler.CodeNotFound, note.ErrNotFound.Error())
		}

		var req note.NotePatch
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return handler.Fail(http.StatusUnprocessableEntity, handler.CodeValidation, "invalid request body")
		}

		updated, err := note.Patch(ctx, s, id, req)

		switch {
		case errors.Is(err, note.ErrEmptyPatch):
			return handler.Fail(http.StatusBadRequest, handler.CodeValidation, err.Error())
		case note.IsValidation(err):
			return handler.Fail(http.StatusUnprocessableEntity, handler.CodeValidation, err.Error())
		case errors.Is(err, note.ErrNotFound):
			return handler.Fail(http.StatusNotFound, handler.CodeNotFound, err.Error())
		case err != nil:
			return handler.Fail(http.StatusInternalServerError, handler.CodeInternal, err.Error())
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body:   updated,
			}
		}
	}
}
