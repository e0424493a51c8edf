package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "blog_api/internal/domain/comment"
	_ "blog_api/internal/domain/post"
	_ "blog_api/internal/domain/reaction"
	_ "blog_api/internal/domain/user"
	"blog_api/internal/pkg/config"
	"blog_api/internal/pkg/middleware"
	"blog_api/internal/pkg/registry"
	"blog_api/internal/pkg/uploader"
	"blog_api/pkg/cache"
	"blog_api/pkg/database"
	"blog_api/pkg/logger"
	"blog_api/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	config.LoadConfig()
	cfg := config.GlobalConfig

	if err := logger.Init(cfg.App.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := database.InitPostgres()
	rdb := database.InitRedis()
	cacheService := cache.NewRedisCache(rdb, "blog-api:")

	var up uploader.Uploader
	if cfg.OSS.AccessKeyID != "" {
		ossUploader, err := uploader.NewAliyunOSSUploader(cfg.OSS)
		if err != nil {
			logger.Log.Fatal("uploader init failed", zap.Error(err))
		}
		up = ossUploader
	} else {
		logger.Log.Warn("OSS not configured, image upload disabled")
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(
		gin.Recovery(),
		cors.Default(),
		middleware.TraceMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.RateLimitMiddleware(middleware.NewIPRateLimiter(100, 200)),
		middleware.MetricsMiddleware(),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	moduleCtx := &registry.ModuleContext{
		DB:       db,
		Redis:    rdb,
		Cache:    cacheService,
		Uploader: up,
		Router:   r,
	}
	if err := registry.InitModules(moduleCtx); err != nil {
		logger.Log.Fatal("module initialization failed", zap.Error(err))
	}

	// publish pool stats for /metrics
	go reportDBStats(db)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// reportDBStats periodically pushes connection pool stats to Prometheus.
func reportDBStats(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Warn("db stats unavailable", zap.Error(err))
		return
	}

	collector := metrics.GetGlobalCollector()
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		collector.UpdateDBStats(sqlDB.Stats())
	}
}
