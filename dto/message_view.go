package dto

import "time"

// MessageView is the inbox projection of a message. SenderUsername is nil
// for anonymous messages.
type MessageView struct {
	ID             uint      `json:"id"`
	Text           string    `json:"text"`
	SenderUsername *string   `json:"sender_username"`
	IsAnonymous    bool      `json:"is_anonymous"`
	Timestamp      time.Time `json:"timestamp"`
}
