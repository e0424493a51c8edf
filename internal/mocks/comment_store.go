package mocks

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog_api/internal/domain/comment/model"
)

var errFailed = errors.New("store unavailable")

// CommentStore is an in-memory CommentRepository.
type CommentStore struct {
	mu    sync.Mutex
	items map[string]model.Comment
	seq   int
}

// NewCommentStore creates an empty store.
func NewCommentStore() *CommentStore {
	return &CommentStore{items: map[string]model.Comment{}}
}

func (s *CommentStore) nextTime() time.Time {
	s.seq++
	return time.Unix(1700000000, 0).Add(time.Duration(s.seq) * time.Second)
}

func (s *CommentStore) Create(comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = s.nextTime()
	comment.UpdatedAt = comment.CreatedAt
	stored := *comment
	stored.Author = nil
	s.items[comment.ID] = stored
	return nil
}

func (s *CommentStore) GetByID(id string) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := c
	return &out, nil
}

// GetByIDs returns only the rows that still exist, oldest first.
func (s *CommentStore) GetByIDs(ids []string) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Comment
	for _, id := range ids {
		if c, ok := s.items[id]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *CommentStore) ListByPost(postID string) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Comment
	for _, c := range s.items {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *CommentStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}
