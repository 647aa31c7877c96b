package repositories

import "github.com/Samuel-pydev/Spill-Zone-bck/models"

type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Exists(username string) (bool, error)
}

type PostRepository interface {
	Create(post *models.Post) error
	ListNewestFirst() ([]models.Post, error)
	FindByID(id uint) (*models.Post, error)
	Delete(id uint) error
}

type MessageRepository interface {
	Create(message *models.Message) error
	InboxNewestFirst(recipientID uint) ([]models.Message, error)
}

type ReactionRepository interface {
	Toggle(postID, userID uint, emoji string) (added bool, err error)
	CountsForPost(postID uint) (map[string]int64, error)
	EmojisForUser(postID, userID uint) ([]string, error)
}
