package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/borealbadger/notes-api/business/v1/note"
	store "github.com/borealbadger/notes-api/persistence/v1/note"
	"github.com/borealbadger/notes-api/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Stores a new note and assigns it a fresh id
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Failure 422 {object} handler.ErrorResponse
// @Router /notes [post]
func Create(s *store.Store) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		var req note.NewNote
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return handler.Fail(http.StatusUnprocessableEntity, handler.CodeValidation, "invalid request body")
		}

		created, err := note.Create(ctx, s, req)

		switch {
		case note.IsValidation(err):
			return handler.Fail(http.StatusUnprocessableEntity, handler.CodeValidation, err.Error())
		case err != nil:
			return handler.Fail(http.StatusInternalServerError, handler.CodeInternal, err.Error())
		default:
			return handler.Result{
				Status: http.StatusCreated,
				Body:   created,
			}
		}
	}
}
