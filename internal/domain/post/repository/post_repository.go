package repository

import (
	"blog_api/internal/domain/post/model"

	"gorm.io/gorm"
)

// PostRepository persists posts and maintains their cached reference lists.
// Each Append*/Remove* call is a single UPDATE statement; that statement is
// the only atomicity the store guarantees, so callers sequencing a child
// write plus a list update get no transaction across the pair.
type PostRepository interface {
	Create(post *model.Post) error
	GetByID(id string) (*model.Post, error)
	ListLive() ([]model.Post, error)
	ListByUser(userID string) ([]model.Post, error)
	ListSharedBy(userID string) ([]model.Post, error)
	Updates(id string, fields map[string]interface{}) error
	SetDeleted(id string) error

	AppendCommentRef(postID, commentID string) error
	RemoveCommentRef(postID, commentID string) error
	AppendReactionRef(postID, reactionID string) error
	RemoveReactionRef(postID, reactionID string) error
	UpdateCounters(postID string, likes, dislikes int64) error

	ListLiveIDs() ([]string, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// GetByID returns the row whether or not it is soft-deleted; services
// decide what deletion means for their operation.
func (r *postRepository) GetByID(id string) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListLive() ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByUser(userID string) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListSharedBy(userID string) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("shared_by_id = ? AND is_deleted = ?", userID, false).
		Order("shared_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Updates(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error
}

func (r *postRepository) SetDeleted(id string) error {
	return r.db.Model(&model.Post{}).Where("id = ?", id).Update("is_deleted", true).Error
}

// jsonb || appends the element, jsonb - text removes every matching string
// element. Both run as one UPDATE.

func (r *postRepository) AppendCommentRef(postID, commentID string) error {
	return r.db.Model(&model.Post{}).Where("id = ?", postID).
		Update("comment_ids", gorm.Expr(`comment_ids || to_jsonb(?::text)`, commentID)).Error
}

func (r *postRepository) RemoveCommentRef(postID, commentID string) error {
	return r.db.Model(&model.Post{}).Where("id = ?", postID).
		Update("comment_ids", gorm.Expr(`comment_ids - ?::text`, commentID)).Error
}

func (r *postRepository) AppendReactionRef(postID, reactionID string) error {
	return r.db.Model(&model.Post{}).Where("id = ?", postID).
		Update("reaction_ids", gorm.Expr(`reaction_ids || to_jsonb(?::text)`, reactionID)).Error
}

func (r *postRepository) RemoveReactionRef(postID, reactionID string) error {
	return r.db.Model(&model.Post{}).Where("id = ?", postID).
		Update("reaction_ids", gorm.Expr(`reaction_ids - ?::text`, reactionID)).Error
}

func (r *postRepository) UpdateCounters(postID string, likes, dislikes int64) error {
	return r.db.Model(&model.Post{}).Where("id = ?", postID).Updates(map[string]interface{}{
		"likes_count":    likes,
		"dislikes_count": dislikes,
	}).Error
}

func (r *postRepository) ListLiveIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Post{}).Where("is_deleted = ?", false).Pluck("id", &ids).Error
	return ids, err
}
