package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Samuel-pydev/Spill-Zone-bck/models"
)

type messageView struct {
	ID             uint    `json:"id"`
	Text           string  `json:"text"`
	SenderUsername *string `json:"sender_username"`
	IsAnonymous    bool    `json:"is_anonymous"`
}

func TestSendAndReceiveMessage(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)
	aliceToken := env.signup(t, "alice", "password123")
	bobToken := env.signup(t, "bob", "password123")

	rr := env.request(t, http.MethodPost, "/messages/send", aliceToken, map[string]interface{}{
		"recipient_username": "bob",
		"text":               "hi bob",
		"is_anonymous":       false,
	})
	req.Equal(http.StatusOK, rr.Code)

	var sent struct {
		Status string `json:"status"`
	}
	decodeBody(t, rr, &sent)
	req.Equal("sent", sent.Status)

	rr = env.request(t, http.MethodGet, "/messages/inbox", bobToken, nil)
	req.Equal(http.StatusOK, rr.Code)

	var inbox []messageView
	decodeBody(t, rr, &inbox)
	req.Len(inbox, 1)
	req.Equal("hi bob", inbox[0].Text)
	req.False(inbox[0].IsAnonymous)
	req.NotNil(inbox[0].SenderUsername)
	req.Equal("alice", *inbox[0].SenderUsername)

	// The sender's own inbox stays empty.
	rr = env.request(t, http.MethodGet, "/messages/inbox", aliceToken, nil)
	req.Equal(http.StatusOK, rr.Code)
	decodeBody(t, rr, &inbox)
	req.Empty(inbox)
}

func TestAnonymousMessageHidesSender(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)
	aliceToken := env.signup(t, "alice", "password123")
	bobToken := env.signup(t, "bob", "password123")

	rr := env.request(t, http.MethodPost, "/messages/send", aliceToken, map[string]interface{}{
		"recipient_username": "bob",
		"text":               "guess who",
		"is_anonymous":       true,
	})
	req.Equal(http.StatusOK, rr.Code)

	rr = env.request(t, http.MethodGet, "/messages/inbox", bobToken, nil)
	req.Equal(http.StatusOK, rr.Code)

	var inbox []messageView
	decodeBody(t, rr, &inbox)
	req.Len(inbox, 1)
	req.True(inbox[0].IsAnonymous)
	req.Nil(inbox[0].SenderUsername)

	// The stored row has no sender id either.
	var stored models.Message
	req.NoError(env.db.First(&stored, inbox[0].ID).Error)
	req.Nil(stored.SenderID)
}

func TestSendToUnknownRecipientLeavesNoRow(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)
	token := env.signup(t, "alice", "password123")

	rr := env.request(t, http.MethodPost, "/messages/send", token, map[string]interface{}{
		"recipient_username": "nobody",
		"text":               "hello?",
		"is_anonymous":       false,
	})
	req.Equal(http.StatusNotFound, rr.Code)
	req.Equal("User not found", errorDetail(t, rr))

	var count int64
	req.NoError(env.db.Model(&models.Message{}).Count(&count).Error)
	req.Zero(count)
}

func TestSendMessageInvalidText(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)
	token := env.signup(t, "alice", "password123")
	env.signup(t, "bob", "password123")

	for _, text := range []string{"", "   ", strings.Repeat("a", 1001)} {
		rr := env.request(t, http.MethodPost, "/messages/send", token, map[string]interface{}{
			"recipient_username": "bob",
			"text":               text,
			"is_anonymous":       false,
		})
		req.Equal(http.StatusBadRequest, rr.Code)
	}
}
