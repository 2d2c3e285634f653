package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyblog/ai"
	"studyblog/services"
)

// StatusHandler godoc
// @Summary      Feature status
// @Description  Reports which backend and AI provider the server is running with
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /test [get]
func StatusHandler(posts *services.PostService, factory *ai.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"storage":    posts.Driver(),
			"aiProvider": factory.Service().Name(),
			"features": []string{
				"posts",
				"ai-improve",
				"ai-tags",
				"ai-structure",
				"engagement",
			},
		})
	}
}
