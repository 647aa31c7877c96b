package models

import "time"

// Message is a direct message. SenderID stays null for anonymous messages,
// so the true sender is never recoverable from the row.
type Message struct {
	ID          uint      `gorm:"primaryKey;column:id"`
	SenderID    *uint     `gorm:"column:sender_id"`
	RecipientID uint      `gorm:"column:recipient_id"`
	Text        string    `gorm:"type:text"`
	IsAnonymous bool      `gorm:"column:is_anonymous"`
	Timestamp   time.Time `gorm:"column:timestamp"`
	Sender      *User     `gorm:"foreignKey:SenderID"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "messages"
}
