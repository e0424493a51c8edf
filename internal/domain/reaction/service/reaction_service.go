package service

import (
	"errors"

	postRepo "blog_api/internal/domain/post/repository"
	"blog_api/internal/domain/reaction/model"
	reactionRepo "blog_api/internal/domain/reaction/repository"
	userRepo "blog_api/internal/domain/user/repository"
	"blog_api/pkg/apperr"
	"blog_api/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReactionService owns the (user, post) reaction relationship and the
// post's denormalized like/dislike counters. Counters are recomputed from
// live counts after every write; between the count-read and the post-write
// another request may land, so the stored counters can lag the true set.
// That window is accepted, not coordinated away.
type ReactionService interface {
	React(userID, postID, reactionType string) (*model.Reaction, error)
	ListByPost(postID string) ([]model.Reaction, error)
	Unreact(reactionID string) error
	RecomputePostCounters(postID string) error
	RecomputeAllCounters() error
}

type reactionService struct {
	reactions reactionRepo.ReactionRepository
	posts     postRepo.PostRepository
	users     userRepo.UserRepository
}

// NewReactionService creates the service.
func NewReactionService(reactions reactionRepo.ReactionRepository, posts postRepo.PostRepository, users userRepo.UserRepository) ReactionService {
	return &reactionService{reactions: reactions, posts: posts, users: users}
}

// React upserts the caller's reaction on a post. An existing reaction for
// the same (user, post) pair gets its type overwritten in place, keeping
// its id; otherwise a new reaction is created and appended to the post's
// reaction_ids list. Either way the counters are recomputed afterwards.
func (s *reactionService) React(userID, postID, reactionType string) (*model.Reaction, error) {
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

	reaction, err := s.reactions.GetByUserAndPost(userID, postID)
	switch {
	case err == nil:
		// type change only; no new identifier, no list update
		reaction.Type = reactionType
		if err := s.reactions.Save(reaction); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		reaction = &model.Reaction{
			UserID: userID,
			PostID: postID,
			Type:   reactionType,
		}
		if err := s.reactions.Create(reaction); err != nil {
			return nil, err
		}
		if err := s.posts.AppendReactionRef(postID, reaction.ID); err != nil {
			// orphaned reaction; the next recount still sees it because
			// counting goes by the reaction rows, not the list
			logger.Log.Warn("reaction created but reference append failed",
				zap.String("post_id", postID),
				zap.String("reaction_id", reaction.ID),
				zap.Error(err),
			)
		}
	default:
		return nil, err
	}

	if err := s.RecomputePostCounters(postID); err != nil {
		logger.Log.Warn("counter recompute failed after react",
			zap.String("post_id", postID), zap.Error(err))
	}
	return reaction, nil
}

// ListByPost returns a post's reactions with public user info resolved.
func (s *reactionService) ListByPost(postID string) ([]model.Reaction, error) {
	reactions, err := s.reactions.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	s.resolveUsers(reactions)
	return reactions, nil
}

// Unreact deletes the reaction, removes its id from the post's list and
// recomputes the counters.
func (s *reactionService) Unreact(reactionID string) error {
	reaction, err := s.reactions.GetByID(reactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("reaction %s", reactionID)
		}
		return err
	}

	if err := s.reactions.Delete(reactionID); err != nil {
		return err
	}

	if err := s.posts.RemoveReactionRef(reaction.PostID, reactionID); err != nil {
		logger.Log.Warn("reaction deleted but reference removal failed",
			zap.String("post_id", reaction.PostID),
			zap.String("reaction_id", reactionID),
			zap.Error(err),
		)
	}

	if err := s.RecomputePostCounters(reaction.PostID); err != nil {
		logger.Log.Warn("counter recompute failed after unreact",
			zap.String("post_id", reaction.PostID), zap.Error(err))
	}
	return nil
}

// RecomputePostCounters overwrites the post's counters with live counts.
// The dislike count is kept for legacy rows even though "dislike" is not
// an accepted input type anymore.
func (s *reactionService) RecomputePostCounters(postID string) error {
	likes, err := s.reactions.CountByPostAndType(postID, model.TypeLike)
	if err != nil {
		return err
	}
	dislikes, err := s.reactions.CountByPostAndType(postID, model.TypeDislike)
	if err != nil {
		return err
	}
	return s.posts.UpdateCounters(postID, likes, dislikes)
}

// RecomputeAllCounters walks every live post and recomputes its counters.
// Idempotent; used by the backfill command to repair drift.
func (s *reactionService) RecomputeAllCounters() error {
	ids, err := s.posts.ListLiveIDs()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.RecomputePostCounters(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *reactionService) resolveUsers(reactions []model.Reaction) {
	if len(reactions) == 0 {
		return
	}

	idSet := make(map[string]struct{}, len(reactions))
	ids := make([]string, 0, len(reactions))
	for i := range reactions {
		if _, seen := idSet[reactions[i].UserID]; !seen {
			idSet[reactions[i].UserID] = struct{}{}
			ids = append(ids, reactions[i].UserID)
		}
	}

	users, err := s.users.GetByIDs(ids)
	if err != nil {
		logger.Log.Warn("reaction user resolution failed", zap.Error(err))
		return
	}

	lookup := make(map[string]int, len(users))
	for i := range users {
		lookup[users[i].ID] = i
	}
	for i := range reactions {
		if j, ok := lookup[reactions[i].UserID]; ok {
			reactions[i].User = users[j].Public()
		}
	}
}
