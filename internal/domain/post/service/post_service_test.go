package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentModel "blog_api/internal/domain/comment/model"
	reactionModel "blog_api/internal/domain/reaction/model"
	userModel "blog_api/internal/domain/user/model"
	"blog_api/internal/mocks"
	"blog_api/pkg/apperr"
)

type postFixture struct {
	posts     *mocks.PostStore
	comments  *mocks.CommentStore
	reactions *mocks.ReactionStore
	users     *mocks.UserStore
	svc       PostService
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	f := &postFixture{
		posts:     mocks.NewPostStore(),
		comments:  mocks.NewCommentStore(),
		reactions: mocks.NewReactionStore(),
		users:     mocks.NewUserStore(),
	}
	f.svc = NewPostService(f.posts, f.comments, f.reactions, f.users)
	return f
}

func (f *postFixture) seedUser(t *testing.T, username string) string {
	t.Helper()
	u := &userModel.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, f.users.Create(u))
	return u.ID
}

func strPtr(s string) *string { return &s }

func TestCreatePost(t *testing.T) {
	f := newPostFixture(t)
	alice := f.seedUser(t, "alice")

	post, err := f.svc.Create(alice, "title", "description", strPtr("http://img/x.png"))
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, alice, post.UserID)
	assert.NotNil(t, post.CommentIDs)
	assert.Empty(t, post.CommentIDs)
	assert.Empty(t, post.ReactionIDs)
	require.NotNil(t, post.User)
	assert.Equal(t, "alice", post.User.Username)
}

func TestGetPost(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		f := newPostFixture(t)
		_, err := f.svc.Get("no-such-post")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("soft-deleted reads as missing", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		post, err := f.svc.Create(alice, "t", "d", nil)
		require.NoError(t, err)

		require.NoError(t, f.svc.Delete(alice, post.ID))

		_, err = f.svc.Get(post.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		// the row itself is retained
		raw, err := f.posts.GetByID(post.ID)
		require.NoError(t, err)
		assert.True(t, raw.IsDeleted)
	})

	t.Run("resolves referenced children and skips dangling ids", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		post, err := f.svc.Create(alice, "t", "d", nil)
		require.NoError(t, err)

		live := &commentModel.Comment{Content: "still here", PostID: post.ID, AuthorID: alice}
		require.NoError(t, f.comments.Create(live))
		require.NoError(t, f.posts.AppendCommentRef(post.ID, live.ID))
		// dangling: referenced but the row no longer exists
		require.NoError(t, f.posts.AppendCommentRef(post.ID, "gone-comment"))

		r := &reactionModel.Reaction{UserID: alice, PostID: post.ID, Type: reactionModel.TypeLike}
		require.NoError(t, f.reactions.Create(r))
		require.NoError(t, f.posts.AppendReactionRef(post.ID, r.ID))
		require.NoError(t, f.posts.AppendReactionRef(post.ID, "gone-reaction"))

		got, err := f.svc.Get(post.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
		assert.Equal(t, live.ID, got.Comments[0].ID)
		require.NotNil(t, got.Comments[0].Author)
		assert.Equal(t, "alice", got.Comments[0].Author.Username)
		require.Len(t, got.Reactions, 1)
		assert.Equal(t, r.ID, got.Reactions[0].ID)
	})

	t.Run("orphaned child rows stay invisible", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		post, err := f.svc.Create(alice, "t", "d", nil)
		require.NoError(t, err)

		// comment exists for the post but was never referenced
		orphan := &commentModel.Comment{Content: "lost", PostID: post.ID, AuthorID: alice}
		require.NoError(t, f.comments.Create(orphan))

		got, err := f.svc.Get(post.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Comments)
	})
}

func TestListPosts(t *testing.T) {
	f := newPostFixture(t)
	alice := f.seedUser(t, "alice")
	bob := f.seedUser(t, "bob")

	first, err := f.svc.Create(alice, "first", "d", nil)
	require.NoError(t, err)
	second, err := f.svc.Create(bob, "second", "d", nil)
	require.NoError(t, err)
	deleted, err := f.svc.Create(alice, "bye", "d", nil)
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(alice, deleted.ID))

	posts, err := f.svc.List()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	// newest first, soft-deleted excluded
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	require.NotNil(t, posts[0].User)
	assert.Equal(t, "bob", posts[0].User.Username)
}

func TestListByUser(t *testing.T) {
	f := newPostFixture(t)
	alice := f.seedUser(t, "alice")
	bob := f.seedUser(t, "bob")

	mine, err := f.svc.Create(alice, "mine", "d", nil)
	require.NoError(t, err)
	_, err = f.svc.Create(bob, "theirs", "d", nil)
	require.NoError(t, err)

	posts, err := f.svc.ListByUser(alice)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, mine.ID, posts[0].ID)
}

func TestUpdatePost(t *testing.T) {
	t.Run("owner updates fields", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		post, err := f.svc.Create(alice, "old", "old", strPtr("http://img/x.png"))
		require.NoError(t, err)

		updated, err := f.svc.Update(alice, post.ID, UpdateFields{
			Title: strPtr("new title"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, "old", updated.Description)
		require.NotNil(t, updated.ImageURL)
	})

	t.Run("remove image", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		post, err := f.svc.Create(alice, "t", "d", strPtr("http://img/x.png"))
		require.NoError(t, err)

		updated, err := f.svc.Update(alice, post.ID, UpdateFields{RemoveImage: true})
		require.NoError(t, err)
		assert.Nil(t, updated.ImageURL)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		bob := f.seedUser(t, "bob")
		post, err := f.svc.Create(alice, "t", "d", nil)
		require.NoError(t, err)

		_, err = f.svc.Update(bob, post.ID, UpdateFields{Title: strPtr("nope")})
		assert.ErrorIs(t, err, apperr.ErrForbidden)

		got, err := f.svc.Get(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "t", got.Title)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		bob := f.seedUser(t, "bob")
		post, err := f.svc.Create(alice, "t", "d", nil)
		require.NoError(t, err)

		err = f.svc.Delete(bob, post.ID)
		assert.ErrorIs(t, err, apperr.ErrForbidden)

		_, err = f.svc.Get(post.ID)
		assert.NoError(t, err)
	})

	t.Run("deleting twice reads as missing", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		post, err := f.svc.Create(alice, "t", "d", nil)
		require.NoError(t, err)

		require.NoError(t, f.svc.Delete(alice, post.ID))
		err = f.svc.Delete(alice, post.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestSharePost(t *testing.T) {
	t.Run("clones display fields with fresh state", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		bob := f.seedUser(t, "bob")
		original, err := f.svc.Create(alice, "title", "description", strPtr("http://img/x.png"))
		require.NoError(t, err)

		// give the original children and counters the share must not carry
		c := &commentModel.Comment{Content: "hi", PostID: original.ID, AuthorID: bob}
		require.NoError(t, f.comments.Create(c))
		require.NoError(t, f.posts.AppendCommentRef(original.ID, c.ID))
		require.NoError(t, f.posts.UpdateCounters(original.ID, 3, 1))

		shared, err := f.svc.Share(bob, original.ID)
		require.NoError(t, err)
		assert.NotEqual(t, original.ID, shared.ID)
		assert.Equal(t, "title", shared.Title)
		assert.Equal(t, "description", shared.Description)
		require.NotNil(t, shared.ImageURL)
		assert.Equal(t, alice, shared.UserID)
		assert.True(t, shared.IsShared)
		require.NotNil(t, shared.OriginalPostID)
		assert.Equal(t, original.ID, *shared.OriginalPostID)
		require.NotNil(t, shared.SharedByID)
		assert.Equal(t, bob, *shared.SharedByID)
		require.NotNil(t, shared.SharedAt)
		require.NotNil(t, shared.SharedBy)
		assert.Equal(t, "bob", shared.SharedBy.Username)

		assert.Empty(t, shared.CommentIDs)
		assert.Empty(t, shared.ReactionIDs)
		assert.Zero(t, shared.LikesCount)
		assert.Zero(t, shared.DislikesCount)
	})

	t.Run("sharing twice yields independent posts", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		bob := f.seedUser(t, "bob")
		original, err := f.svc.Create(alice, "t", "d", nil)
		require.NoError(t, err)

		s1, err := f.svc.Share(bob, original.ID)
		require.NoError(t, err)
		s2, err := f.svc.Share(bob, original.ID)
		require.NoError(t, err)
		assert.NotEqual(t, s1.ID, s2.ID)

		shares, err := f.svc.ListSharedBy(bob)
		require.NoError(t, err)
		assert.Len(t, shares, 2)
	})

	t.Run("missing or deleted original", func(t *testing.T) {
		f := newPostFixture(t)
		alice := f.seedUser(t, "alice")
		_, err := f.svc.Share(alice, "no-such-post")
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		post, err := f.svc.Create(alice, "t", "d", nil)
		require.NoError(t, err)
		require.NoError(t, f.svc.Delete(alice, post.ID))
		_, err = f.svc.Share(alice, post.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
