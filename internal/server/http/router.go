package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter mounts the API under /api and, if webDir is set, static files under /web.
func NewRouter(h *Handler, webDir string) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	api.POST("/new_game", h.handleNewGame)
	api.POST("/play", h.handlePlay)
	api.POST("/state", h.handleState)
	api.GET("/ws", h.handleWS)

	if webDir != "" {
		r.Static("/web", webDir)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/web/")
		})
	}
	return r
}
