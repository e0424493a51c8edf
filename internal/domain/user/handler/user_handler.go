package handler

import (
	"blog_api/internal/domain/user/service"
	"blog_api/internal/pkg/middleware"
	"blog_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the /auth endpoints.
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates the handler.
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterInput is the body for POST /auth/register.
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginInput is the body for POST /auth/login.
type LoginInput struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// Register creates a new account.
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	user, err := h.service.Register(input.Username, input.Email, input.Password)
	if err != nil {
		response.HandleError(c, err, response.ErrUserNotFound)
		return
	}
	response.Success(c, user)
}

// Login verifies credentials and returns a token.
func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	token, err := h.service.Login(input.UsernameOrEmail, input.Password)
	if err != nil {
		response.HandleError(c, err, response.ErrUserNotFound)
		return
	}
	response.Success(c, gin.H{"token": token})
}

// Profile resolves the token subject to its account.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.service.GetProfile(middleware.UserID(c))
	if err != nil {
		response.HandleError(c, err, response.ErrUserNotFound)
		return
	}
	response.Success(c, user)
}
