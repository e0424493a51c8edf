package mocks

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog_api/internal/domain/user/model"
)

// UserStore is an in-memory UserRepository.
type UserStore struct {
	mu    sync.Mutex
	items map[string]model.User
	seq   int
}

// NewUserStore creates an empty store.
func NewUserStore() *UserStore {
	return &UserStore{items: map[string]model.User{}}
}

func (s *UserStore) nextTime() time.Time {
	s.seq++
	return time.Unix(1700000000, 0).Add(time.Duration(s.seq) * time.Second)
}

func (s *UserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = s.nextTime()
	user.UpdatedAt = user.CreatedAt
	s.items[user.ID] = *user
	return nil
}

func (s *UserStore) GetByID(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := u
	return &out, nil
}

func (s *UserStore) GetByIDs(ids []string) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.User
	for _, id := range ids {
		if u, ok := s.items[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *UserStore) GetByUsername(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.items {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *UserStore) GetByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.items {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *UserStore) GetByUsernameOrEmail(usernameOrEmail string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.items {
		if u.Username == usernameOrEmail || u.Email == usernameOrEmail {
			out := u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *UserStore) Update(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.UpdatedAt = s.nextTime()
	s.items[user.ID] = *user
	return nil
}
