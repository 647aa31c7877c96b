package repositories

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Samuel-pydev/Spill-Zone-bck/database"
	"github.com/Samuel-pydev/Spill-Zone-bck/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()

	user := models.User{Username: username, PasswordHash: "irrelevant"}
	require.NoError(t, repo.Create(&user))
	return &user
}
