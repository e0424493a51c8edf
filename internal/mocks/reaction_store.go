package mocks

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog_api/internal/domain/reaction/model"
)

// ReactionStore is an in-memory ReactionRepository.
type ReactionStore struct {
	mu    sync.Mutex
	items map[string]model.Reaction
	seq   int
}

// NewReactionStore creates an empty store.
func NewReactionStore() *ReactionStore {
	return &ReactionStore{items: map[string]model.Reaction{}}
}

func (s *ReactionStore) nextTime() time.Time {
	s.seq++
	return time.Unix(1700000000, 0).Add(time.Duration(s.seq) * time.Second)
}

func (s *ReactionStore) Create(reaction *model.Reaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reaction.ID == "" {
		reaction.ID = uuid.New().String()
	}
	reaction.CreatedAt = s.nextTime()
	reaction.UpdatedAt = reaction.CreatedAt
	stored := *reaction
	stored.User = nil
	s.items[reaction.ID] = stored
	return nil
}

func (s *ReactionStore) Save(reaction *model.Reaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reaction.UpdatedAt = s.nextTime()
	stored := *reaction
	stored.User = nil
	s.items[reaction.ID] = stored
	return nil
}

func (s *ReactionStore) GetByID(id string) (*model.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := r
	return &out, nil
}

func (s *ReactionStore) GetByIDs(ids []string) ([]model.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Reaction
	for _, id := range ids {
		if r, ok := s.items[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReactionStore) GetByUserAndPost(userID, postID string) (*model.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if r.UserID == userID && r.PostID == postID {
			out := r
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *ReactionStore) ListByPost(postID string) ([]model.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Reaction
	for _, r := range s.items {
		if r.PostID == postID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReactionStore) CountByPostAndType(postID, reactionType string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, r := range s.items {
		if r.PostID == postID && r.Type == reactionType {
			n++
		}
	}
	return n, nil
}

func (s *ReactionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}
