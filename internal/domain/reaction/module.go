package reaction

import (
	postRepo "blog_api/internal/domain/post/repository"
	"blog_api/internal/domain/reaction/handler"
	"blog_api/internal/domain/reaction/repository"
	"blog_api/internal/domain/reaction/service"
	userRepo "blog_api/internal/domain/user/repository"
	"blog_api/internal/pkg/middleware"
	"blog_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// ReactionModule wires the reaction ledger.
type ReactionModule struct{}

func init() {
	registry.Register(&ReactionModule{})
}

func (m *ReactionModule) Name() string {
	return "reaction"
}

func (m *ReactionModule) Priority() int {
	return 30
}

func (m *ReactionModule) Init(ctx *registry.ModuleContext) error {
	reactions := repository.NewReactionRepository(ctx.DB)
	posts := postRepo.NewPostRepository(ctx.DB)
	users := userRepo.NewUserRepository(ctx.DB)

	svc := service.NewReactionService(reactions, posts, users)
	h := handler.NewReactionHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.ReactionHandler) {
	g := r.Group("/reactions")

	g.GET("/post/:postId", h.ByPost)

	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", h.Create)
		auth.DELETE("/:id", h.Delete)
	}
}
