package http

import (
	"fmt"
	"net/http"
	"strconv"

	"mld-backend/internal/entity"
	"mld-backend/internal/usecase"
	"mld-backend/pkg/logger"
	"mld-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsUseCase usecase.NewsUseCase
	saver       *upload.Saver
	logger      *logger.Logger
}

func NewNewsHandler(newsUseCase usecase.NewsUseCase, saver *upload.Saver, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{
		newsUseCase: newsUseCase,
		saver:       saver,
		logger:      logger,
	}
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func caller(c *gin.Context) (string, entity.UserRole) {
	return c.GetString("user_id"), entity.UserRole(c.GetString("user_role"))
}

// List godoc
// @Summary      List published news posts
// @Tags         news
// @Produce      json
// @Success      200  {array}  entity.News
// @Failure      500  {object}  map[string]string
// @Router       /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	news, err := h.newsUseCase.ListPublished()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// Get godoc
// @Summary      Get a news post
// @Tags         news
// @Produce      json
// @Param        id path string true "News post ID"
// @Success      200  {object}  entity.News
// @Failure      404  {object}  map[string]string
// @Router       /news/{id} [get]
func (h *NewsHandler) Get(c *gin.Context) {
	news, err := h.newsUseCase.GetNews(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// Create godoc
// @Summary      Create a news post
// @Description  Admin only; accepts multipart form with an image file
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        content formData string true "Body content"
// @Param        isPublished formData boolean false "Published flag (default true)"
// @Param        image formData file true "Post image"
// @Success      201  {object}  entity.News
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	userID, _ := caller(c)

	// Validate the flag before writing the image so a typo cannot orphan
	// an upload.
	published, err := publishedFlag(c)
	if err != nil {
		respondError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	imagePath, err := h.saver.Save(file, "news")
	if err != nil {
		respondError(c, err)
		return
	}

	news, err := h.newsUseCase.CreateNews(
		userID,
		c.PostForm("title"),
		c.PostForm("content"),
		imagePath,
		published,
	)
	if err != nil {
		// The stored file is not rolled back; leave a trace for cleanup.
		h.logger.Error("News create failed after upload, orphaned file %s: %v", imagePath, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, news)
}

// Update godoc
// @Summary      Update a news post
// @Description  Admin only; fields are replaced only when provided
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "News post ID"
// @Param        title formData string false "Title"
// @Param        content formData string false "Body content"
// @Param        isPublished formData boolean false "Published flag"
// @Param        image formData file false "Replacement image"
// @Success      200  {object}  entity.News
// @Failure      404  {object}  map[string]string
// @Router       /news/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	var title, content, imagePath *string

	published, err := publishedFlag(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if v, ok := c.GetPostForm("title"); ok {
		title = &v
	}
	if v, ok := c.GetPostForm("content"); ok {
		content = &v
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.saver.Save(file, "news")
		if err != nil {
			respondError(c, err)
			return
		}
		imagePath = &path
	}

	news, err := h.newsUseCase.UpdateNews(c.Param("id"), title, content, imagePath, published)
	if err != nil {
		if imagePath != nil {
			h.logger.Error("News update failed after upload, orphaned file %s: %v", *imagePath, err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// Delete godoc
// @Summary      Delete a news post
// @Description  Admin only; removes the post with all comments and replies
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "News post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.newsUseCase.DeleteNews(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "news post deleted successfully"})
}

// Like godoc
// @Summary      Toggle a like on a news post
// @Description  Adds the caller to the likes set, or removes it when present
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "News post ID"
// @Success      200  {object}  entity.News
// @Failure      404  {object}  map[string]string
// @Router       /news/{id}/like [post]
func (h *NewsHandler) Like(c *gin.Context) {
	userID, _ := caller(c)

	news, err := h.newsUseCase.ToggleLike(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// AddComment godoc
// @Summary      Comment on a news post
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "News post ID"
// @Param        request body CommentRequest true "Comment content"
// @Success      200  {object}  entity.News
// @Failure      404  {object}  map[string]string
// @Router       /news/{id}/comment [post]
func (h *NewsHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := caller(c)

	news, err := h.newsUseCase.AddComment(c.Param("id"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Allowed for the comment's author or an admin; replies cascade
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "News post ID"
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  entity.News
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/{id}/comment/{commentId} [delete]
func (h *NewsHandler) DeleteComment(c *gin.Context) {
	userID, role := caller(c)

	news, err := h.newsUseCase.DeleteComment(c.Param("id"), c.Param("commentId"), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// AddReply godoc
// @Summary      Reply to a comment
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "News post ID"
// @Param        commentId path string true "Comment ID"
// @Param        request body CommentRequest true "Reply content"
// @Success      200  {object}  entity.News
// @Failure      404  {object}  map[string]string
// @Router       /news/{id}/comment/{commentId}/reply [post]
func (h *NewsHandler) AddReply(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := caller(c)

	news, err := h.newsUseCase.AddReply(c.Param("id"), c.Param("commentId"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// DeleteReply godoc
// @Summary      Delete a reply
// @Description  Allowed for the reply's author or an admin
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "News post ID"
// @Param        commentId path string true "Comment ID"
// @Param        replyId path string true "Reply ID"
// @Success      200  {object}  entity.News
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/{id}/comment/{commentId}/reply/{replyId} [delete]
func (h *NewsHandler) DeleteReply(c *gin.Context) {
	userID, role := caller(c)

	news, err := h.newsUseCase.DeleteReply(c.Param("id"), c.Param("commentId"), c.Param("replyId"), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

func publishedFlag(c *gin.Context) (*bool, error) {
	v, ok := c.GetPostForm("isPublished")
	if !ok {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%w: isPublished must be a boolean", usecase.ErrValidation)
	}
	return &parsed, nil
}
