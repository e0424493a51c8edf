package model

import (
	userModel "blog_api/internal/domain/user/model"
	baseModel "blog_api/pkg/model"
)

// Comment belongs to one post. The owning post caches this comment's id in
// its comment_ids list; that cache, not this row, is what feed reads walk.
type Comment struct {
	baseModel.BaseModel
	Content  string `json:"content"`
	PostID   string `gorm:"type:uuid;index" json:"post"`
	AuthorID string `gorm:"type:uuid" json:"authorId"`

	// resolved on read, never persisted
	Author *userModel.PublicUser `gorm:"-" json:"author,omitempty"`
}
