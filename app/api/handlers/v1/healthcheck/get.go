package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/borealbadger/notes-api/platform/web/handler"
)

// Status is the health endpoint body
type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Service health
// @Description Reports whether the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Router /healthz [get]
func Get(ctx *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
