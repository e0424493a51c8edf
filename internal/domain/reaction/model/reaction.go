package model

import (
	userModel "blog_api/internal/domain/user/model"
	baseModel "blog_api/pkg/model"
)

// Reaction types clients may send. "dislike" is intentionally absent: the
// counter recomputation still counts legacy dislike rows, but new ones can
// no longer be created.
const (
	TypeLike  = "like"
	TypeLove  = "love"
	TypeHaha  = "haha"
	TypeSad   = "sad"
	TypeAngry = "angry"

	// legacy type, counted but never accepted as input
	TypeDislike = "dislike"
)

// Reaction records one user's reaction to one post. At most one row may
// exist per (user, post) pair; reacting again overwrites the type in place.
type Reaction struct {
	baseModel.BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex:idx_reactions_user_post" json:"user"`
	PostID string `gorm:"type:uuid;uniqueIndex:idx_reactions_user_post;index" json:"post"`
	Type   string `json:"type"`

	// resolved on read, never persisted
	User *userModel.PublicUser `gorm:"-" json:"userInfo,omitempty"`
}
