package service

import (
	"context"
	"fmt"
	"time"

	"blog_api/internal/domain/post/model"
	"blog_api/pkg/cache"
	"blog_api/pkg/logger"

	"go.uber.org/zap"
)

// Cache keys and lifetimes. TTLs are short on purpose: comment and
// reaction writes update posts without going through this decorator, so
// the TTL bounds how stale a cached aggregate can get.
const (
	postCacheKeyPrefix = "post:"
	feedCacheKey       = "post_feed"
	postCacheTTL       = time.Minute
	feedCacheTTL       = 30 * time.Second
)

// CachedPostService decorates PostService with read caching for the feed
// and single-post reads. Writes invalidate.
type CachedPostService struct {
	inner PostService
	cache cache.CacheService
}

// NewCachedPostService wraps inner with the given cache.
func NewCachedPostService(inner PostService, c cache.CacheService) PostService {
	return &CachedPostService{inner: inner, cache: c}
}

func postCacheKey(id string) string {
	return fmt.Sprintf("%s%s", postCacheKeyPrefix, id)
}

func (s *CachedPostService) List() ([]model.Post, error) {
	ctx := context.Background()

	var cached []model.Post
	if err := s.cache.Get(ctx, feedCacheKey, &cached); err == nil {
		return cached, nil
	}

	posts, err := s.inner.List()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, feedCacheKey, posts, feedCacheTTL); err != nil {
		logger.Log.Warn("feed cache set failed", zap.Error(err))
	}
	return posts, nil
}

func (s *CachedPostService) Get(id string) (*model.Post, error) {
	ctx := context.Background()

	var cached model.Post
	if err := s.cache.Get(ctx, postCacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	post, err := s.inner.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, postCacheKey(id), post, postCacheTTL); err != nil {
		logger.Log.Warn("post cache set failed", zap.String("post_id", id), zap.Error(err))
	}
	return post, nil
}

func (s *CachedPostService) Create(userID, title, description string, imageURL *string) (*model.Post, error) {
	post, err := s.inner.Create(userID, title, description, imageURL)
	if err == nil {
		s.invalidateFeed()
	}
	return post, err
}

func (s *CachedPostService) Update(requesterID, id string, fields UpdateFields) (*model.Post, error) {
	post, err := s.inner.Update(requesterID, id, fields)
	if err == nil {
		s.invalidatePost(id)
	}
	return post, err
}

func (s *CachedPostService) Delete(requesterID, id string) error {
	err := s.inner.Delete(requesterID, id)
	if err == nil {
		s.invalidatePost(id)
	}
	return err
}

func (s *CachedPostService) Share(requesterID, id string) (*model.Post, error) {
	post, err := s.inner.Share(requesterID, id)
	if err == nil {
		s.invalidateFeed()
	}
	return post, err
}

// Per-user listings are not cached; their access pattern is too scattered
// to be worth the invalidation surface.

func (s *CachedPostService) ListByUser(userID string) ([]model.Post, error) {
	return s.inner.ListByUser(userID)
}

func (s *CachedPostService) ListSharedBy(userID string) ([]model.Post, error) {
	return s.inner.ListSharedBy(userID)
}

func (s *CachedPostService) invalidateFeed() {
	if err := s.cache.Delete(context.Background(), feedCacheKey); err != nil {
		logger.Log.Warn("feed cache invalidation failed", zap.Error(err))
	}
}

func (s *CachedPostService) invalidatePost(id string) {
	ctx := context.Background()
	if err := s.cache.Delete(ctx, postCacheKey(id)); err != nil {
		logger.Log.Warn("post cache invalidation failed", zap.String("post_id", id), zap.Error(err))
	}
	if err := s.cache.Delete(ctx, feedCacheKey); err != nil {
		logger.Log.Warn("feed cache invalidation failed", zap.Error(err))
	}
}
