package comment

import (
	"blog_api/internal/domain/comment/handler"
	"blog_api/internal/domain/comment/repository"
	"blog_api/internal/domain/comment/service"
	postRepo "blog_api/internal/domain/post/repository"
	userRepo "blog_api/internal/domain/user/repository"
	"blog_api/internal/pkg/middleware"
	"blog_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CommentModule wires the comment ledger.
type CommentModule struct{}

func init() {
	registry.Register(&CommentModule{})
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Priority() int {
	return 20
}

func (m *CommentModule) Init(ctx *registry.ModuleContext) error {
	comments := repository.NewCommentRepository(ctx.DB)
	posts := postRepo.NewPostRepository(ctx.DB)
	users := userRepo.NewUserRepository(ctx.DB)

	svc := service.NewCommentService(comments, posts, users)
	h := handler.NewCommentHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CommentHandler) {
	g := r.Group("/comments")

	g.GET("/post/:postId", h.ByPost)

	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", h.Create)
		auth.DELETE("/:id", h.Delete)
	}
}
