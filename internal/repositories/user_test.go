package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositories_SQLite(t *testing.T) {
	conn := setupSQLite(t)
	ctx := context.Background()

	readRepo := NewUserReadRepository(conn)
	writeRepo := NewUserWriteRepository(conn)

	n, err := readRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, writeRepo.Save(ctx, "alice", "hash-a"))
	require.NoError(t, writeRepo.Save(ctx, "bob", "hash-b"))

	t.Run("GetByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash-a", user.PasswordHash)
		assert.NotZero(t, user.UserID)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := writeRepo.Save(ctx, "alice", "other")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Count", func(t *testing.T) {
		n, err := readRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestUserReadRepository_QueryError(t *testing.T) {
	conn, mock := setupMock(t)
	repo := NewUserReadRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash")).
		WithArgs("alice").
		WillReturnError(errors.New("disk I/O error"))

	user, err := repo.GetByUsername(context.Background(), "alice")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_ExecError(t *testing.T) {
	conn, mock := setupMock(t)
	repo := NewUserWriteRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (username, password_hash)")).
		WithArgs("alice", "hash").
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), "alice", "hash")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_CountError(t *testing.T) {
	conn, mock := setupMock(t)
	repo := NewUserReadRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
