package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/Samuel-pydev/Spill-Zone-bck/apperrors"
	"github.com/Samuel-pydev/Spill-Zone-bck/dto"
	"github.com/Samuel-pydev/Spill-Zone-bck/middleware"
	"github.com/Samuel-pydev/Spill-Zone-bck/models"
	"github.com/Samuel-pydev/Spill-Zone-bck/monitoring"
	"github.com/Samuel-pydev/Spill-Zone-bck/repositories"
)

const maxMessageLength = 1000

// MessageHandler handles direct messaging endpoints
type MessageHandler struct {
	Messages repositories.MessageRepository
	Users    repositories.UserRepository
}

func NewMessageHandler(messages repositories.MessageRepository, users repositories.UserRepository) *MessageHandler {
	return &MessageHandler{Messages: messages, Users: users}
}

type sendMessageRequest struct {
	RecipientUsername string `json:"recipient_username" validate:"required"`
	Text              string `json:"text"`
	IsAnonymous       bool   `json:"is_anonymous"`
}

// Send delivers a message to another user's inbox. Anonymous messages are
// stored without a sender id, so the sender is unrecoverable.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Recipient username is required")
		return
	}

	recipient, err := h.Users.FindByUsername(req.RecipientUsername)
	if errors.Is(err, apperrors.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" || utf8.RuneCountInString(text) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "Text must be between 1 and 1000 characters")
		return
	}

	message := models.Message{
		RecipientID: recipient.ID,
		Text:        text,
		IsAnonymous: req.IsAnonymous,
		Timestamp:   time.Now().UTC(),
	}
	if !req.IsAnonymous {
		message.SenderID = &user.ID
	}

	if err := h.Messages.Create(&message); err != nil {
		logrus.WithError(err).Error("failed to send message")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	monitoring.MessagesSent.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

// Inbox lists the caller's received messages newest-first.
func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	messages, err := h.Messages.InboxNewestFirst(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]dto.MessageView, 0, len(messages))
	for _, msg := range messages {
		var senderUsername *string
		if !msg.IsAnonymous && msg.SenderID != nil && msg.Sender != nil {
			senderUsername = &msg.Sender.Username
		}

		views = append(views, dto.MessageView{
			ID:             msg.ID,
			Text:           msg.Text,
			SenderUsername: senderUsername,
			IsAnonymous:    msg.IsAnonymous,
			Timestamp:      msg.Timestamp,
		})
	}

	writeJSON(w, http.StatusOK, views)
}
