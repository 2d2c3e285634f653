package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"studyblog/dto"
	"studyblog/services"
)

// 구조 생성 입력의 최소 길이 (공백 제거 후, 문자 수 기준)
const minStructureInputRunes = 3

// ImproveTextHandler godoc
// @Summary      Improve a passage
// @Description  Rewrites the given text as clearer prose using the active AI provider
// @Tags         ai
// @Accept       json
// @Param        request  body  dto.ImproveTextRequest  true  "Text to improve"
// @Produce      json
// @Success      200  {object}  dto.ImproveTextResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ai/improve [post]
func ImproveTextHandler(svc *services.AssistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ImproveTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "텍스트를 입력해주세요"})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "텍스트를 입력해주세요"})
			return
		}

		result, err := svc.ImproveText(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "텍스트 개선에 실패했습니다"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// SuggestTagsHandler godoc
// @Summary      Suggest tags
// @Description  Suggests up to five tags from a title/content pair
// @Tags         ai
// @Accept       json
// @Param        request  body  dto.SuggestTagsRequest  true  "Title and content"
// @Produce      json
// @Success      200  {object}  dto.SuggestTagsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ai/tags [post]
func SuggestTagsHandler(svc *services.AssistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SuggestTagsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "제목 또는 내용을 입력해주세요"})
			return
		}
		if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "제목 또는 내용을 입력해주세요"})
			return
		}

		result, err := svc.SuggestTags(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "태그 제안에 실패했습니다"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GenerateStructureHandler godoc
// @Summary      Generate a post outline
// @Description  Builds an ordered section outline from a rough idea
// @Tags         ai
// @Accept       json
// @Param        request  body  dto.GenerateStructureRequest  true  "Rough idea"
// @Produce      json
// @Success      200  {object}  dto.GenerateStructureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ai/structure [post]
func GenerateStructureHandler(svc *services.AssistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateStructureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "어떤 글을 쓰고 싶은지 입력해주세요"})
			return
		}
		if utf8.RuneCountInString(strings.TrimSpace(req.UserInput)) < minStructureInputRunes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "어떤 글을 쓰고 싶은지 조금 더 자세히 입력해주세요"})
			return
		}

		result, err := svc.GenerateStructure(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "글 구조 생성에 실패했습니다"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
