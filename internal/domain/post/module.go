package post

import (
	commentRepo "blog_api/internal/domain/comment/repository"
	"blog_api/internal/domain/post/handler"
	"blog_api/internal/domain/post/repository"
	"blog_api/internal/domain/post/service"
	reactionRepo "blog_api/internal/domain/reaction/repository"
	userRepo "blog_api/internal/domain/user/repository"
	"blog_api/internal/pkg/middleware"
	"blog_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// PostModule wires the post aggregate.
type PostModule struct{}

func init() {
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	return 10
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	posts := repository.NewPostRepository(ctx.DB)
	comments := commentRepo.NewCommentRepository(ctx.DB)
	reactions := reactionRepo.NewReactionRepository(ctx.DB)
	users := userRepo.NewUserRepository(ctx.DB)

	svc := service.NewPostService(posts, comments, reactions, users)
	if ctx.Cache != nil {
		svc = service.NewCachedPostService(svc, ctx.Cache)
	}
	h := handler.NewPostHandler(svc, ctx.Uploader)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PostHandler) {
	g := r.Group("/posts")

	// public reads
	g.GET("/all", h.List)
	g.GET("/user/:userId", h.ByUser)
	g.GET("/shared/:userId", h.SharedBy)
	g.GET("/:id", h.Get)

	// writes require login
	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", h.Create)
		auth.GET("/my-posts", h.MyPosts)
		auth.PUT("/:id", h.Update)
		auth.DELETE("/:id", h.Delete)
		auth.POST("/:id/share", h.Share)
		auth.POST("/upload", h.Upload)
	}
}
