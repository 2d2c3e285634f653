package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studyblog/dto"
	"studyblog/services"
)

// ListPostsHandler godoc
// @Summary      List published posts
// @Description  List published posts, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {array}  dto.PostDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.GetPublishedPosts(c.Request.Context()))
	}
}

// PostCountsHandler godoc
// @Summary      Count posts
// @Description  Totals per status (total / published / drafts)
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.PostCountsDTO
// @Router       /posts/count [get]
func PostCountsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.GetCounts(c.Request.Context()))
	}
}

// GetPostBySlugHandler godoc
// @Summary      Get post by slug
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/slug/{slug} [get]
func GetPostBySlugHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post := svc.GetPostBySlug(c.Request.Context(), c.Param("slug"))
		if post == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Tags         posts
// @Param        id  path  string  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post := svc.GetPostByID(c.Request.Context(), c.Param("id"))
		if post == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// SavePostHandler godoc
// @Summary      Create or update a post
// @Description  Saves a post. Without an id the slug decides create vs update; with an id a slug owned by another post is rejected.
// @Tags         posts
// @Accept       json
// @Param        request  body  dto.SavePostRequest  true  "Post payload"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /posts [post]
func SavePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SavePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if strings.TrimSpace(req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		post, err := svc.SavePost(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSlugConflict):
				c.JSON(http.StatusConflict, gin.H{"error": "slug already in use by another post"})
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			case errors.Is(err, services.ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save post"})
			}
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post
// @Tags         posts
// @Param        id  path  string  true  "Post id"
// @Produce      json
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// IncrementViewHandler godoc
// @Summary      Record a post view
// @Tags         posts
// @Param        id  path  string  true  "Post id"
// @Produce      json
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/view [post]
func IncrementViewHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.IncrementViewCount(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ToggleLikeHandler godoc
// @Summary      Toggle like on a post
// @Description  Flips the session's liked state and adjusts the like counter
// @Tags         posts
// @Param        id  path  string  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.EngagementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/like [post]
func ToggleLikeHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := svc.ToggleLike(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// ToggleBookmarkHandler godoc
// @Summary      Toggle bookmark on a post
// @Tags         posts
// @Param        id  path  string  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.EngagementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/bookmark [post]
func ToggleBookmarkHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := svc.ToggleBookmark(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle bookmark"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// SessionEngagementHandler godoc
// @Summary      Session engagement state
// @Description  Ids of posts the current session liked and bookmarked
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /session/engagement [get]
func SessionEngagementHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"likedPosts":      svc.LikedPostIDs(ctx),
			"bookmarkedPosts": svc.BookmarkedPostIDs(ctx),
		})
	}
}
