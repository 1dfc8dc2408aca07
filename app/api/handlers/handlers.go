package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/borealbadger/notes-api/app/api/handlers/v1/healthcheck"
	"github.com/borealbadger/notes-api/app/api/handlers/v1/notes"
	store "github.com/borealbadger/notes-api/persistence/v1/note"
	"github.com/borealbadger/notes-api/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/healthz", handler.Wrapper(healthcheck.Get))
}

// MapApi wires the note routes against the given store. The static
// /notes/search segment takes priority over the :id parameter.
func MapApi(r *gin.Engine, s *store.Store) {
	r.POST("/notes", handler.Wrapper(notes.Create(s)))
	r.GET("/notes", handler.Wrapper(notes.List(s)))
	r.GET("/notes/search", handler.Wrapper(notes.Search(s)))
	r.GET("/notes/:id", handler.Wrapper(notes.Get(s)))
	r.PATCH("/notes/:id", handler.Wrapper(notes.Patch(s)))
	r.DELETE("/notes/:id", handler.Wrapper(notes.Delete(s)))
}
