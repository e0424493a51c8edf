package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	baseModel "blog_api/pkg/model"
)

func newMockRepo(t *testing.T) (PostRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewPostRepository(db), mock
}

func TestAppendCommentRef(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "posts" SET "comment_ids"=comment_ids \|\| to_jsonb\(\$1::text\)`).
		WithArgs("c1", sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AppendCommentRef("p1", "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveCommentRef(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "posts" SET "comment_ids"=comment_ids - \$1::text`).
		WithArgs("c1", sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RemoveCommentRef("p1", "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendReactionRef(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "posts" SET "reaction_ids"=reaction_ids \|\| to_jsonb\(\$1::text\)`).
		WithArgs("r1", sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AppendReactionRef("p1", "r1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDeleted(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "posts" SET "is_deleted"=\$1`).
		WithArgs(true, sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetDeleted("p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCounters(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "posts" SET "dislikes_count"=\$1,"likes_count"=\$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateCounters("p1", 3, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDScansIDLists(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "title", "comment_ids", "reaction_ids", "is_deleted"}).
		AddRow("p1", "hello", []byte(`["c1","c2"]`), []byte(`[]`), false)
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).
		WithArgs("p1", 1).
		WillReturnRows(rows)

	post, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Title)
	assert.Equal(t, baseModel.IDList{"c1", "c2"}, post.CommentIDs)
	assert.Empty(t, post.ReactionIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLiveIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("p1").AddRow("p2")
	mock.ExpectQuery(`SELECT "id" FROM "posts" WHERE is_deleted = \$1`).
		WithArgs(false).
		WillReturnRows(rows)

	ids, err := repo.ListLiveIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
