package repository

import (
	"blog_api/internal/domain/reaction/model"

	"gorm.io/gorm"
)

// ReactionRepository persists reactions.
type ReactionRepository interface {
	Create(reaction *model.Reaction) error
	Save(reaction *model.Reaction) error
	GetByID(id string) (*model.Reaction, error)
	GetByIDs(ids []string) ([]model.Reaction, error)
	GetByUserAndPost(userID, postID string) (*model.Reaction, error)
	ListByPost(postID string) ([]model.Reaction, error)
	CountByPostAndType(postID, reactionType string) (int64, error)
	Delete(id string) error
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a GORM-backed repository.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Create(reaction *model.Reaction) error {
	return r.db.Create(reaction).Error
}

func (r *reactionRepository) Save(reaction *model.Reaction) error {
	return r.db.Save(reaction).Error
}

func (r *reactionRepository) GetByID(id string) (*model.Reaction, error) {
	var reaction model.Reaction
	if err := r.db.Where("id = ?", id).First(&reaction).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

// GetByIDs silently skips ids that no longer resolve, so callers can walk
// a post's cached reference list without tripping on dangling entries.
func (r *reactionRepository) GetByIDs(ids []string) ([]model.Reaction, error) {
	var reactions []model.Reaction
	if len(ids) == 0 {
		return reactions, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&reactions).Error
	return reactions, err
}

func (r *reactionRepository) GetByUserAndPost(userID, postID string) (*model.Reaction, error) {
	var reaction model.Reaction
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&reaction).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *reactionRepository) ListByPost(postID string) ([]model.Reaction, error) {
	var reactions []model.Reaction
	err := r.db.Where("post_id = ?", postID).Find(&reactions).Error
	return reactions, err
}

func (r *reactionRepository) CountByPostAndType(postID, reactionType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Reaction{}).
		Where("post_id = ? AND type = ?", postID, reactionType).
		Count(&count).Error
	return count, err
}

func (r *reactionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Reaction{}).Error
}
