package handler

import (
	"net/http"

	"blog_api/internal/domain/post/service"
	"blog_api/internal/pkg/middleware"
	"blog_api/internal/pkg/uploader"
	"blog_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// PostHandler serves the /posts endpoints.
type PostHandler struct {
	service  service.PostService
	uploader uploader.Uploader
}

// NewPostHandler creates the handler. uploader may be nil when object
// storage is not configured; upload then reports an error.
func NewPostHandler(s service.PostService, u uploader.Uploader) *PostHandler {
	return &PostHandler{service: s, uploader: u}
}

// CreateInput is the body for POST /posts.
type CreateInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ImageURL    *string `json:"imageUrl"`
}

// UpdateInput is the body for PUT /posts/:id. Absent fields stay
// unchanged; removeImage clears the image explicitly.
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	RemoveImage bool    `json:"removeImage"`
}

// List returns all live posts, newest first.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.List()
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, posts)
}

// Create creates a post owned by the caller.
func (h *PostHandler) Create(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.service.Create(middleware.UserID(c), input.Title, input.Description, input.ImageURL)
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, post)
}

// Get returns one live post.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, post)
}

// MyPosts returns the caller's posts.
func (h *PostHandler) MyPosts(c *gin.Context) {
	posts, err := h.service.ListByUser(middleware.UserID(c))
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, posts)
}

// ByUser returns a user's posts.
func (h *PostHandler) ByUser(c *gin.Context) {
	posts, err := h.service.ListByUser(c.Param("userId"))
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, posts)
}

// SharedBy returns the posts a user shared, most recent share first.
func (h *PostHandler) SharedBy(c *gin.Context) {
	posts, err := h.service.ListSharedBy(c.Param("userId"))
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, posts)
}

// Update edits a post; owner only.
func (h *PostHandler) Update(c *gin.Context) {
	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.service.Update(middleware.UserID(c), c.Param("id"), service.UpdateFields{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		RemoveImage: input.RemoveImage,
	})
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, post)
}

// Delete soft-deletes a post; owner only.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(middleware.UserID(c), c.Param("id")); err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, gin.H{"message": "Post deleted successfully"})
}

// Share creates a derived post referencing the original.
func (h *PostHandler) Share(c *gin.Context) {
	post, err := h.service.Share(middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, post)
}

// Upload stores a post image and returns its URL.
func (h *PostHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Uploader not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "image file is required")
		return
	}

	url, err := h.uploader.UploadFile(file)
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}

	response.Success(c, gin.H{
		"url":          url,
		"originalName": file.Filename,
		"uploadedBy":   middleware.UserID(c),
	})
}
