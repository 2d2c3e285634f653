package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studyblog/ai"
	"studyblog/api/handlers"
	"studyblog/api/middleware"
	_ "studyblog/docs"
	"studyblog/services"
)

// New wires every route against the prepared services.
func New(posts *services.PostService, assist *services.AssistService, factory *ai.Factory) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": posts.Driver()})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/test", handlers.StatusHandler(posts, factory))

		api.GET("/posts", handlers.ListPostsHandler(posts))
		api.POST("/posts", handlers.SavePostHandler(posts))
		api.GET("/posts/count", handlers.PostCountsHandler(posts))
		api.GET("/posts/slug/:slug", handlers.GetPostBySlugHandler(posts))
		api.GET("/posts/:id", handlers.GetPostHandler(posts))
		api.DELETE("/posts/:id", handlers.DeletePostHandler(posts))
		api.POST("/posts/:id/view", handlers.IncrementViewHandler(posts))
		api.POST("/posts/:id/like", handlers.ToggleLikeHandler(posts))
		api.POST("/posts/:id/bookmark", handlers.ToggleBookmarkHandler(posts))
		api.GET("/session/engagement", handlers.SessionEngagementHandler(posts))

		api.POST("/ai/improve", handlers.ImproveTextHandler(assist))
		api.POST("/ai/tags", handlers.SuggestTagsHandler(assist))
		api.POST("/ai/structure", handlers.GenerateStructureHandler(assist))
	}

	return r
}
