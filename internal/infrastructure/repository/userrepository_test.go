package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
)

func setupUserDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))
	return db
}

func makeUser(t *testing.T, username, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, email, "hashed-secret", authorization.RoleUser)
	require.NoError(t, err)
	return u
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupUserDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser(t, "alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID())

	byID, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username())

	byUsername, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), byUsername.ID())

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), byEmail.ID())
	assert.Equal(t, "hashed-secret", byEmail.PasswordHash())
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	db := setupUserDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db := setupUserDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeUser(t, "alice", "alice@example.com")))

	err := repo.Create(ctx, makeUser(t, "alice", "other@example.com"))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))

	err = repo.Create(ctx, makeUser(t, "someone", "alice@example.com"))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestUserRepository_Exists(t *testing.T) {
	db := setupUserDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeUser(t, "alice", "alice@example.com")))

	taken, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserRepository_RolePersists(t *testing.T) {
	db := setupUserDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	admin, err := user.NewUser("root", "root@example.com", "hash", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, admin))

	found, err := repo.GetByID(ctx, admin.ID())
	require.NoError(t, err)
	assert.True(t, found.IsAdmin())
}
