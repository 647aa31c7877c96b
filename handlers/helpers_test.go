package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Samuel-pydev/Spill-Zone-bck/auth"
	"github.com/Samuel-pydev/Spill-Zone-bck/database"
	"github.com/Samuel-pydev/Spill-Zone-bck/handlers"
	"github.com/Samuel-pydev/Spill-Zone-bck/repositories"
	"github.com/Samuel-pydev/Spill-Zone-bck/routes"
)

var testEmojis = []string{"👀", "👍", "💀", "☕"}

type testEnv struct {
	handler http.Handler
	db      *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	reactionRepo := repositories.NewReactionRepository(db)

	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)

	handler := routes.SetupRoutes(
		handlers.NewAuthHandler(userRepo, tokens),
		handlers.NewFeedHandler(postRepo, reactionRepo),
		handlers.NewMessageHandler(messageRepo, userRepo),
		handlers.NewReactionHandler(reactionRepo, testEmojis),
		handlers.NewSystemHandler(),
		tokens, userRepo,
		[]string{"*"},
	)

	return &testEnv{handler: handler, db: db}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

// signup registers a user and returns their access token.
func (e *testEnv) signup(t *testing.T, username, password string) string {
	t.Helper()

	rr := e.request(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, rr, &resp)
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func errorDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, rr, &resp)
	return resp.Detail
}
