package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Samuel-pydev/Spill-Zone-bck/apperrors"
	"github.com/Samuel-pydev/Spill-Zone-bck/models"
)

func TestUserCreateAndFind(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	created := createTestUser(t, repo, "alice")
	req.NotZero(created.ID)

	found, err := repo.FindByUsername("alice")
	req.NoError(err)
	req.Equal(created.ID, found.ID)

	byID, err := repo.FindByID(created.ID)
	req.NoError(err)
	req.Equal("alice", byID.Username)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	createTestUser(t, repo, "alice")

	err := repo.Create(&models.User{Username: "alice", PasswordHash: "other"})
	req.ErrorIs(err, apperrors.ErrConflict)
}

func TestUserFindMissing(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByUsername("nobody")
	req.ErrorIs(err, apperrors.ErrNotFound)

	_, err = repo.FindByID(42)
	req.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserExists(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	createTestUser(t, repo, "alice")

	exists, err := repo.Exists("alice")
	req.NoError(err)
	req.True(exists)

	exists, err = repo.Exists("bob")
	req.NoError(err)
	req.False(exists)
}
