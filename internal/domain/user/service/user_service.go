package service

import (
	"errors"

	"blog_api/internal/domain/user/model"
	"blog_api/internal/domain/user/repository"
	"blog_api/pkg/apperr"
	"blog_api/pkg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles registration, credential verification and profile
// lookups.
type UserService interface {
	Register(username, email, password string) (*model.User, error)
	Login(usernameOrEmail, password string) (string, error)
	GetProfile(userID string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates the service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates a new account with a bcrypt password hash. Duplicate
// usernames or emails are rejected before the insert.
func (s *userService) Register(username, email, password string) (*model.User, error) {
	if _, err := s.repo.GetByUsername(username); err == nil {
		return nil, apperr.Conflictf("username %q is already taken", username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, apperr.Conflictf("email %q is already registered", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a signed token. The same error
// is returned for an unknown account and a wrong password.
func (s *userService) Login(usernameOrEmail, password string) (string, error) {
	user, err := s.repo.GetByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Unauthorizedf("invalid credentials")
		}
		return "", err
	}
	if user.IsDeleted {
		return "", apperr.Unauthorizedf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperr.Unauthorizedf("invalid credentials")
	}

	return utils.GenerateToken(user.ID, user.Username)
}

// GetProfile resolves the token subject to a live account.
func (s *userService) GetProfile(userID string) (*model.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s", userID)
		}
		return nil, err
	}
	if user.IsDeleted {
		return nil, apperr.NotFoundf("user %s", userID)
	}
	return user, nil
}
