package service

import (
	"errors"
	"time"

	commentModel "blog_api/internal/domain/comment/model"
	commentRepo "blog_api/internal/domain/comment/repository"
	"blog_api/internal/domain/post/model"
	postRepo "blog_api/internal/domain/post/repository"
	reactionModel "blog_api/internal/domain/reaction/model"
	reactionRepo "blog_api/internal/domain/reaction/repository"
	userModel "blog_api/internal/domain/user/model"
	userRepo "blog_api/internal/domain/user/repository"
	"blog_api/pkg/apperr"
	"blog_api/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateFields carries the optional PUT /posts/:id fields. Nil pointers
// mean "leave unchanged"; RemoveImage clears the image explicitly so an
// absent imageUrl is not mistaken for a removal.
type UpdateFields struct {
	Title       *string
	Description *string
	ImageURL    *string
	RemoveImage bool
}

// PostService owns the post aggregate: CRUD, soft-delete and share.
type PostService interface {
	Create(userID, title, description string, imageURL *string) (*model.Post, error)
	List() ([]model.Post, error)
	Get(id string) (*model.Post, error)
	ListByUser(userID string) ([]model.Post, error)
	ListSharedBy(userID string) ([]model.Post, error)
	Update(requesterID, id string, fields UpdateFields) (*model.Post, error)
	Delete(requesterID, id string) error
	Share(requesterID, id string) (*model.Post, error)
}

type postService struct {
	posts     postRepo.PostRepository
	comments  commentRepo.CommentRepository
	reactions reactionRepo.ReactionRepository
	users     userRepo.UserRepository
}

// NewPostService creates the service with explicit store handles.
func NewPostService(posts postRepo.PostRepository, comments commentRepo.CommentRepository, reactions reactionRepo.ReactionRepository, users userRepo.UserRepository) PostService {
	return &postService{posts: posts, comments: comments, reactions: reactions, users: users}
}

func (s *postService) Create(userID, title, description string, imageURL *string) (*model.Post, error) {
	post := &model.Post{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		UserID:      userID,
		CommentIDs:  []string{},
		ReactionIDs: []string{},
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	s.resolve([]*model.Post{post})
	return post, nil
}

func (s *postService) List() ([]model.Post, error) {
	posts, err := s.posts.ListLive()
	if err != nil {
		return nil, err
	}
	s.resolveSlice(posts)
	return posts, nil
}

// Get returns a live post or NotFound; soft-deleted posts report NotFound
// even though the row still exists.
func (s *postService) Get(id string) (*model.Post, error) {
	post, err := s.getLive(id)
	if err != nil {
		return nil, err
	}
	s.resolve([]*model.Post{post})
	return post, nil
}

func (s *postService) ListByUser(userID string) ([]model.Post, error) {
	posts, err := s.posts.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	s.resolveSlice(posts)
	return posts, nil
}

func (s *postService) ListSharedBy(userID string) ([]model.Post, error) {
	posts, err := s.posts.ListSharedBy(userID)
	if err != nil {
		return nil, err
	}
	s.resolveSlice(posts)
	return posts, nil
}

// Update applies the given fields. Only the owner may update.
func (s *postService) Update(requesterID, id string, fields UpdateFields) (*model.Post, error) {
	post, err := s.getLive(id)
	if err != nil {
		return nil, err
	}
	if post.UserID != requesterID {
		return nil, apperr.Forbiddenf("you are not allowed to edit this post")
	}

	updates := map[string]interface{}{}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.RemoveImage {
		updates["image_url"] = nil
	} else if fields.ImageURL != nil {
		updates["image_url"] = *fields.ImageURL
	}

	if len(updates) > 0 {
		if err := s.posts.Updates(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete soft-deletes: the flag is set, the row is retained forever.
func (s *postService) Delete(requesterID, id string) error {
	post, err := s.getLive(id)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return apperr.Forbiddenf("you are not allowed to delete this post")
	}
	return s.posts.SetDeleted(id)
}

// Share creates a new post that copies the original's display fields. The
// derived post is a distinct aggregate with empty reference lists and zero
// counters; sharing twice yields two independent posts.
func (s *postService) Share(requesterID, id string) (*model.Post, error) {
	original, err := s.getLive(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shared := &model.Post{
		Title:          original.Title,
		Description:    original.Description,
		ImageURL:       original.ImageURL,
		UserID:         original.UserID,
		CommentIDs:     []string{},
		ReactionIDs:    []string{},
		IsShared:       true,
		OriginalPostID: &original.ID,
		SharedByID:     &requesterID,
		SharedAt:       &now,
	}
	if err := s.posts.Create(shared); err != nil {
		return nil, err
	}
	s.resolve([]*model.Post{shared})
	return shared, nil
}

func (s *postService) getLive(id string) (*model.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("post %s", id)
		}
		return nil, err
	}
	if post.IsDeleted {
		return nil, apperr.NotFoundf("post %s", id)
	}
	return post, nil
}

func (s *postService) resolveSlice(posts []model.Post) {
	refs := make([]*model.Post, len(posts))
	for i := range posts {
		refs[i] = &posts[i]
	}
	s.resolve(refs)
}

// resolve fills the read-only projections: owner and sharer public info,
// comments (with authors) and reactions from the cached id lists. Ids
// that no longer resolve are skipped, so a dangling reference degrades to
// a shorter list instead of an error.
func (s *postService) resolve(posts []*model.Post) {
	if len(posts) == 0 {
		return
	}

	var commentIDs, reactionIDs []string
	userIDSet := make(map[string]struct{})
	for _, p := range posts {
		commentIDs = append(commentIDs, p.CommentIDs...)
		reactionIDs = append(reactionIDs, p.ReactionIDs...)
		userIDSet[p.UserID] = struct{}{}
		if p.SharedByID != nil {
			userIDSet[*p.SharedByID] = struct{}{}
		}
	}

	comments, err := s.comments.GetByIDs(commentIDs)
	if err != nil {
		logger.Log.Warn("comment resolution failed", zap.Error(err))
	}
	reactions, err := s.reactions.GetByIDs(reactionIDs)
	if err != nil {
		logger.Log.Warn("reaction resolution failed", zap.Error(err))
	}

	for i := range comments {
		userIDSet[comments[i].AuthorID] = struct{}{}
	}
	for i := range reactions {
		userIDSet[reactions[i].UserID] = struct{}{}
	}

	userIDs := make([]string, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}
	users, err := s.users.GetByIDs(userIDs)
	if err != nil {
		logger.Log.Warn("user resolution failed", zap.Error(err))
	}

	publicByID := make(map[string]*userModel.PublicUser, len(users))
	for i := range users {
		publicByID[users[i].ID] = users[i].Public()
	}

	commentsByPost := make(map[string][]commentModel.Comment)
	for i := range comments {
		comments[i].Author = publicByID[comments[i].AuthorID]
		commentsByPost[comments[i].PostID] = append(commentsByPost[comments[i].PostID], comments[i])
	}
	reactionsByPost := make(map[string][]reactionModel.Reaction)
	for i := range reactions {
		reactions[i].User = publicByID[reactions[i].UserID]
		reactionsByPost[reactions[i].PostID] = append(reactionsByPost[reactions[i].PostID], reactions[i])
	}

	for _, p := range posts {
		p.User = publicByID[p.UserID]
		if p.SharedByID != nil {
			p.SharedBy = publicByID[*p.SharedByID]
		}
		p.Comments = filterByRefs(commentsByPost[p.ID], p.CommentIDs)
		p.Reactions = filterReactionsByRefs(reactionsByPost[p.ID], p.ReactionIDs)
	}
}

// filterByRefs keeps only the children the post's cached list actually
// references; an orphaned child row stays invisible until repaired.
func filterByRefs(comments []commentModel.Comment, refs []string) []commentModel.Comment {
	out := make([]commentModel.Comment, 0, len(comments))
	refSet := make(map[string]struct{}, len(refs))
	for _, id := range refs {
		refSet[id] = struct{}{}
	}
	for _, c := range comments {
		if _, ok := refSet[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

func filterReactionsByRefs(reactions []reactionModel.Reaction, refs []string) []reactionModel.Reaction {
	out := make([]reactionModel.Reaction, 0, len(reactions))
	refSet := make(map[string]struct{}, len(refs))
	for _, id := range refs {
		refSet[id] = struct{}{}
	}
	for _, r := range reactions {
		if _, ok := refSet[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}
