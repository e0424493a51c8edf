// Command backfill recomputes the denormalized like/dislike counters of
// every live post from the reaction rows. Counters can drift because the
// request path recomputes without any cross-request coordination; this is
// the repair job, safe to run at any time.
package main

import (
	"flag"

	postRepo "blog_api/internal/domain/post/repository"
	reactionRepo "blog_api/internal/domain/reaction/repository"
	reactionService "blog_api/internal/domain/reaction/service"
	userRepo "blog_api/internal/domain/user/repository"
	"blog_api/internal/pkg/config"
	"blog_api/internal/pkg/worker"
	"blog_api/pkg/database"
	"blog_api/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	workers := flag.Int("workers", 8, "number of concurrent recount workers")
	flag.Parse()

	config.LoadConfig()
	if err := logger.Init(config.GlobalConfig.App.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := database.InitPostgres()

	posts := postRepo.NewPostRepository(db)
	reactions := reactionRepo.NewReactionRepository(db)
	users := userRepo.NewUserRepository(db)
	svc := reactionService.NewReactionService(reactions, posts, users)

	ids, err := posts.ListLiveIDs()
	if err != nil {
		logger.Log.Fatal("listing posts failed", zap.Error(err))
	}
	if len(ids) == 0 {
		logger.Log.Info("no live posts, nothing to do")
		return
	}

	pool := worker.NewRecountPool(svc, *workers, len(ids))
	pool.Start()
	for _, id := range ids {
		pool.AddTask(id)
	}
	pool.Wait()

	logger.Log.Info("backfill complete", zap.Int("posts", len(ids)))
}
