package handler

import (
	"net/http"

	"blog_api/internal/domain/comment/service"
	"blog_api/internal/pkg/middleware"
	"blog_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommentHandler serves the /comments endpoints.
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates the handler.
func NewCommentHandler(s service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

// CreateInput is the body for POST /comments. The author is always the
// token subject, never taken from the body.
type CreateInput struct {
	Content string `json:"content" binding:"required"`
	Post    string `json:"post" binding:"required,uuid"`
}

// Create adds a comment to a post.
func (h *CommentHandler) Create(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.service.Add(middleware.UserID(c), input.Post, input.Content)
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, comment)
}

// ByPost lists a post's comments, newest first.
func (h *CommentHandler) ByPost(c *gin.Context) {
	comments, err := h.service.ListByPost(c.Param("postId"))
	if err != nil {
		response.HandleError(c, err, response.ErrCommentNotFound)
		return
	}
	response.Success(c, comments)
}

// Delete removes a comment; author only.
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.service.Remove(middleware.UserID(c), c.Param("id")); err != nil {
		response.HandleError(c, err, response.ErrCommentNotFound)
		return
	}
	response.Success(c, gin.H{"message": "Comment deleted successfully"})
}
