package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"newshub/helper"
	"newshub/middleware"
	"newshub/models"
	"newshub/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	uploadDir      string
}

func NewArticleHandler(articleService services.ArticleService, uploadDir string) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, uploadDir: uploadDir}
}

// GetArticles handles GET /api/articles. The public listing only ever
// exposes published articles; a status parameter cannot widen it.
// Authors see their drafts through the dashboard listing instead.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters"})
		return
	}
	params.Status = string(models.StatusPublished)

	articles, total, err := h.articleService.GetArticles(params)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":   articles,
		"pagination": helper.Paginate(total, params.Limit, params.Offset),
	})
}

// GetDashboardArticles handles GET /api/dashboard/articles, listing the
// authenticated author's own articles in every status.
func (h *ArticleHandler) GetDashboardArticles(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters"})
		return
	}
	params.AuthorID = actor.ID

	articles, total, err := h.articleService.GetArticles(params)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":   articles,
		"pagination": helper.Paginate(total, params.Limit, params.Offset),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": models.ErrNotFound.Error()})
		return
	}

	article, err := h.articleService.GetArticle(uint(id))
	if err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	article, err := h.articleService.GetArticleBySlug(c.Param("slug"))
	if err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// CreateArticle handles POST /api/articles. The body is multipart form
// data so an image can travel with the article fields.
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	input, ok := h.bindArticleForm(c)
	if !ok {
		return
	}

	article, err := h.articleService.CreateArticle(actor, input)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Article created successfully",
		"id":      article.ID,
	})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": models.ErrNotFound.Error()})
		return
	}

	input, ok := h.bindArticleForm(c)
	if !ok {
		return
	}

	article, err := h.articleService.UpdateArticle(actor, uint(id), input)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article updated successfully",
		"article": article,
	})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": models.ErrNotFound.Error()})
		return
	}

	if err := h.articleService.DeleteArticle(actor, uint(id)); err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

func (h *ArticleHandler) GetTags(c *gin.Context) {
	tags, err := h.articleService.GetTags()
	if err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// bindArticleForm reads article fields from either a multipart form or a
// JSON body and stores an uploaded image when one is present.
func (h *ArticleHandler) bindArticleForm(c *gin.Context) (models.ArticleInput, bool) {
	var input models.ArticleInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return input, false
	}

	file, err := c.FormFile("image")
	if err != nil {
		// No image attached; nothing to store.
		return input, true
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.ErrInternal.Error()})
		return input, false
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.ErrInternal.Error()})
		return input, false
	}

	imageURL := "/uploads/" + filename
	input.ImageURL = &imageURL
	return input, true
}
