package model

import (
	baseModel "blog_api/pkg/model"
)

// User account. Immutable once created except for the soft-delete flag.
type User struct {
	baseModel.BaseModel
	Username  string `gorm:"uniqueIndex" json:"username"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Password  string `json:"-"`
	IsDeleted bool   `gorm:"default:false" json:"isDeleted"`
}

// PublicUser is the projection embedded in posts, comments and reactions.
// It must never carry the password hash or the email address.
type PublicUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Public returns the user's public projection.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
