package repository

import (
	"blog_api/internal/domain/comment/model"

	"gorm.io/gorm"
)

// CommentRepository persists comments.
type CommentRepository interface {
	Create(comment *model.Comment) error
	GetByID(id string) (*model.Comment, error)
	GetByIDs(ids []string) ([]model.Comment, error)
	ListByPost(postID string) ([]model.Comment, error)
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDs returns only the rows that still exist; ids that no longer
// resolve are silently absent from the result. Callers resolving a post's
// cached reference list rely on that.
func (r *commentRepository) GetByIDs(ids []string) ([]model.Comment, error) {
	var comments []model.Comment
	if len(ids) == 0 {
		return comments, nil
	}
	err := r.db.Where("id IN ?", ids).Order("created_at asc").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListByPost(postID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("post_id = ?", postID).Order("created_at desc").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Comment{}).Error
}
