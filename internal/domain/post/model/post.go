package model

import (
	"time"

	commentModel "blog_api/internal/domain/comment/model"
	reactionModel "blog_api/internal/domain/reaction/model"
	userModel "blog_api/internal/domain/user/model"
	baseModel "blog_api/pkg/model"
)

// Post is the aggregate root. CommentIDs and ReactionIDs are jsonb caches
// of the live one-to-many sets keyed on the child rows' post id; they are
// maintained in lockstep by the comment and reaction services, with
// single-statement appends/removals as the only atomic unit. Readers must
// tolerate dangling ids (resolve skips them) and orphaned child rows.
type Post struct {
	baseModel.BaseModel
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	UserID      string  `gorm:"type:uuid;index" json:"userId"`

	CommentIDs  baseModel.IDList `gorm:"type:jsonb;default:'[]'" json:"commentIds"`
	ReactionIDs baseModel.IDList `gorm:"type:jsonb;default:'[]'" json:"reactionIds"`

	IsDeleted bool `gorm:"default:false" json:"isDeleted"`
	IsShared  bool `gorm:"default:false" json:"isShared"`

	OriginalPostID *string    `gorm:"type:uuid" json:"originalPost,omitempty"`
	SharedByID     *string    `gorm:"type:uuid;index" json:"sharedById,omitempty"`
	SharedAt       *time.Time `json:"sharedAt,omitempty"`

	// denormalized counters, recomputed after every reaction write
	LikesCount    int64 `gorm:"default:0" json:"likesCount"`
	DislikesCount int64 `gorm:"default:0" json:"dislikesCount"`

	// resolved on read, never persisted
	User      *userModel.PublicUser    `gorm:"-" json:"user,omitempty"`
	SharedBy  *userModel.PublicUser    `gorm:"-" json:"sharedBy,omitempty"`
	Comments  []commentModel.Comment   `gorm:"-" json:"comments"`
	Reactions []reactionModel.Reaction `gorm:"-" json:"reactions"`
}
