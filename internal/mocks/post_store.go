// Package mocks provides in-memory repository fakes for service tests.
// They mirror the stores' observable behavior: missing rows surface
// gorm.ErrRecordNotFound, reference-list updates are single operations,
// and nothing spans more than one of them atomically.
package mocks

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog_api/internal/domain/post/model"
	baseModel "blog_api/pkg/model"
)

// PostStore is an in-memory PostRepository. The Fail* switches make the
// corresponding reference operation return an error, which is how tests
// exercise the orphan and dangling-reference paths.
type PostStore struct {
	mu    sync.Mutex
	items map[string]model.Post
	seq   int

	FailAppendCommentRef  bool
	FailRemoveCommentRef  bool
	FailAppendReactionRef bool
	FailRemoveReactionRef bool
}

// NewPostStore creates an empty store.
func NewPostStore() *PostStore {
	return &PostStore{items: map[string]model.Post{}}
}

func (s *PostStore) nextTime() time.Time {
	s.seq++
	return time.Unix(1700000000, 0).Add(time.Duration(s.seq) * time.Second)
}

func clonePost(p model.Post) model.Post {
	p.CommentIDs = append(baseModel.IDList{}, p.CommentIDs...)
	p.ReactionIDs = append(baseModel.IDList{}, p.ReactionIDs...)
	p.User = nil
	p.SharedBy = nil
	p.Comments = nil
	p.Reactions = nil
	return p
}

func (s *PostStore) Create(post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = s.nextTime()
	post.UpdatedAt = post.CreatedAt
	s.items[post.ID] = clonePost(*post)
	return nil
}

// GetByID returns the row whether or not it is soft-deleted, matching the
// real store.
func (s *PostStore) GetByID(id string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := clonePost(p)
	return &out, nil
}

func (s *PostStore) ListLive() ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Post
	for _, p := range s.items {
		if !p.IsDeleted {
			out = append(out, clonePost(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *PostStore) ListByUser(userID string) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Post
	for _, p := range s.items {
		if p.UserID == userID && !p.IsDeleted {
			out = append(out, clonePost(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *PostStore) ListSharedBy(userID string) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Post
	for _, p := range s.items {
		if p.SharedByID != nil && *p.SharedByID == userID && !p.IsDeleted {
			out = append(out, clonePost(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SharedAt != nil && out[j].SharedAt != nil && out[i].SharedAt.After(*out[j].SharedAt)
	})
	return out, nil
}

func (s *PostStore) Updates(id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			p.Title = v.(string)
		case "description":
			p.Description = v.(string)
		case "image_url":
			if v == nil {
				p.ImageURL = nil
			} else {
				u := v.(string)
				p.ImageURL = &u
			}
		case "likes_count":
			p.LikesCount = v.(int64)
		case "dislikes_count":
			p.DislikesCount = v.(int64)
		}
	}
	p.UpdatedAt = s.nextTime()
	s.items[id] = p
	return nil
}

func (s *PostStore) SetDeleted(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok {
		return nil
	}
	p.IsDeleted = true
	s.items[id] = p
	return nil
}

func (s *PostStore) AppendCommentRef(postID, commentID string) error {
	if s.FailAppendCommentRef {
		return errFailed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[postID]
	if !ok {
		return nil
	}
	p.CommentIDs = append(p.CommentIDs, commentID)
	s.items[postID] = p
	return nil
}

func (s *PostStore) RemoveCommentRef(postID, commentID string) error {
	if s.FailRemoveCommentRef {
		return errFailed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[postID]
	if !ok {
		return nil
	}
	p.CommentIDs = removeID(p.CommentIDs, commentID)
	s.items[postID] = p
	return nil
}

func (s *PostStore) AppendReactionRef(postID, reactionID string) error {
	if s.FailAppendReactionRef {
		return errFailed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[postID]
	if !ok {
		return nil
	}
	p.ReactionIDs = append(p.ReactionIDs, reactionID)
	s.items[postID] = p
	return nil
}

func (s *PostStore) RemoveReactionRef(postID, reactionID string) error {
	if s.FailRemoveReactionRef {
		return errFailed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[postID]
	if !ok {
		return nil
	}
	p.ReactionIDs = removeID(p.ReactionIDs, reactionID)
	s.items[postID] = p
	return nil
}

func (s *PostStore) UpdateCounters(postID string, likes, dislikes int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[postID]
	if !ok {
		return nil
	}
	p.LikesCount = likes
	p.DislikesCount = dislikes
	s.items[postID] = p
	return nil
}

func (s *PostStore) ListLiveIDs() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, p := range s.items {
		if !p.IsDeleted {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// removeID drops every occurrence, same as the jsonb "- text" operator.
func removeID(list baseModel.IDList, id string) baseModel.IDList {
	out := make(baseModel.IDList, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
