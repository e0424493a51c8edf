package handler

import (
	"net/http"

	"blog_api/internal/domain/reaction/service"
	"blog_api/internal/pkg/middleware"
	"blog_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReactionHandler serves the /reactions endpoints.
type ReactionHandler struct {
	service service.ReactionService
}

// NewReactionHandler creates the handler.
func NewReactionHandler(s service.ReactionService) *ReactionHandler {
	return &ReactionHandler{service: s}
}

// CreateInput is the body for POST /reactions. The reacting user is the
// token subject. Type is a closed enumeration; "dislike" is not in it.
type CreateInput struct {
	Post string `json:"post" binding:"required,uuid"`
	Type string `json:"type" binding:"required,oneof=like love haha sad angry"`
}

// Create upserts the caller's reaction on a post.
func (h *ReactionHandler) Create(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	reaction, err := h.service.React(middleware.UserID(c), input.Post, input.Type)
	if err != nil {
		response.HandleError(c, err, response.ErrPostNotFound)
		return
	}
	response.Success(c, reaction)
}

// ByPost lists a post's reactions.
func (h *ReactionHandler) ByPost(c *gin.Context) {
	reactions, err := h.service.ListByPost(c.Param("postId"))
	if err != nil {
		response.HandleError(c, err, response.ErrReactionNotFound)
		return
	}
	response.Success(c, reactions)
}

// Delete removes a reaction.
func (h *ReactionHandler) Delete(c *gin.Context) {
	if err := h.service.Unreact(c.Param("id")); err != nil {
		response.HandleError(c, err, response.ErrReactionNotFound)
		return
	}
	response.Success(c, gin.H{"message": "Reaction deleted successfully"})
}
