package service

import (
	"errors"

	"blog_api/internal/domain/comment/model"
	commentRepo "blog_api/internal/domain/comment/repository"
	postRepo "blog_api/internal/domain/post/repository"
	userRepo "blog_api/internal/domain/user/repository"
	"blog_api/pkg/apperr"
	"blog_api/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentService owns comment lifecycle and keeps the owning post's
// comment_ids list in lockstep. The two mutations of each operation are
// not atomic as a pair: Add can leave an orphaned comment and Remove a
// dangling reference when the second step fails. Readers tolerate both.
type CommentService interface {
	Add(authorID, postID, content string) (*model.Comment, error)
	ListByPost(postID string) ([]model.Comment, error)
	Remove(requesterID, commentID string) error
}

type commentService struct {
	comments commentRepo.CommentRepository
	posts    postRepo.PostRepository
	users    userRepo.UserRepository
}

// NewCommentService creates the service.
func NewCommentService(comments commentRepo.CommentRepository, posts postRepo.PostRepository, users userRepo.UserRepository) CommentService {
	return &commentService{comments: comments, posts: posts, users: users}
}

// Add creates the comment, then appends its id to the post's list. The
// post must exist and be live before the comment row is written.
func (s *commentService) Add(authorID, postID, content string) (*model.Comment, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("post %s", postID)
		}
		return nil, err
	}
	if post.IsDeleted {
		return nil, apperr.NotFoundf("post %s", postID)
	}

	comment := &model.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}

	// Second step of the non-atomic pair. On failure the comment row is
	// orphaned: it exists but the post's list never references it. The
	// primary write already succeeded, so the caller still gets the
	// comment back.
	if err := s.posts.AppendCommentRef(postID, comment.ID); err != nil {
		logger.Log.Warn("comment created but reference append failed",
			zap.String("post_id", postID),
			zap.String("comment_id", comment.ID),
			zap.Error(err),
		)
	}

	s.resolveAuthors([]*model.Comment{comment})
	return comment, nil
}

// ListByPost returns the post's comments newest first, authors resolved.
func (s *commentService) ListByPost(postID string) ([]model.Comment, error) {
	comments, err := s.comments.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	refs := make([]*model.Comment, len(comments))
	for i := range comments {
		refs[i] = &comments[i]
	}
	s.resolveAuthors(refs)
	return comments, nil
}

// Remove deletes the comment, then removes its id from the post's list.
// Only the author may delete. A failure after the delete leaves a
// dangling reference in the post; readers skip it.
func (s *commentService) Remove(requesterID, commentID string) error {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("comment %s", commentID)
		}
		return err
	}

	if comment.AuthorID != requesterID {
		return apperr.Forbiddenf("you can only delete your own comments")
	}

	if err := s.comments.Delete(commentID); err != nil {
		return err
	}

	if err := s.posts.RemoveCommentRef(comment.PostID, commentID); err != nil {
		logger.Log.Warn("comment deleted but reference removal failed",
			zap.String("post_id", comment.PostID),
			zap.String("comment_id", commentID),
			zap.Error(err),
		)
	}
	return nil
}

// resolveAuthors fills the public author projection on each comment.
// Unresolvable authors are left nil rather than failing the read.
func (s *commentService) resolveAuthors(comments []*model.Comment) {
	if len(comments) == 0 {
		return
	}

	idSet := make(map[string]struct{}, len(comments))
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		if _, seen := idSet[c.AuthorID]; !seen {
			idSet[c.AuthorID] = struct{}{}
			ids = append(ids, c.AuthorID)
		}
	}

	users, err := s.users.GetByIDs(ids)
	if err != nil {
		logger.Log.Warn("author resolution failed", zap.Error(err))
		return
	}

	lookup := make(map[string]int, len(users))
	for i := range users {
		lookup[users[i].ID] = i
	}
	for _, c := range comments {
		if i, ok := lookup[c.AuthorID]; ok {
			c.Author = users[i].Public()
		}
	}
}
