package repositories

import (
	"gorm.io/gorm"

	"github.com/Samuel-pydev/Spill-Zone-bck/models"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) InboxNewestFirst(recipientID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Sender").
		Where("recipient_id = ?", recipientID).
		Order("timestamp DESC").
		Find(&messages).Error
	return messages, err
}
