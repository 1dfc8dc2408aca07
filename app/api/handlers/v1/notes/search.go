package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/borealbadger/notes-api/business/v1/note"
	store "github.com/borealbadger/notes-api/persistence/v1/note"
	"github.com/borealbadger/notes-api/platform/web/handler"
)

// Search godoc
// @Summary Search notes
// @Description Returns the notes whose title or content contains q, ignoring case
// @Tags Note
// @Produce json
// @Param q query string true "Substring to search for"
// @Success 200 {array} note.Note
// @Failure 400 {object} handler.ErrorResponse
// @Router /notes/search [get]
func Search(s *store.Store) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		matches, err := note.Search(ctx, s, ctx.Query("q"))

		switch {
		case note.IsValidation(err):
			return handler.Fail(http.StatusBadRequest, handler.CodeValidation, err.Error())
		case err != nil:
			return handler.Fail(http.StatusInternalServerError, handler.CodeInternal, err.Error())
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body:   matches,
			}
		}
	}
}
