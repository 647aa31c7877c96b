package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Samuel-pydev/Spill-Zone-bck/models"
)

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Toggle flips the presence of a (post, user, emoji) reaction inside a
// transaction and reports whether it ended up added. An insert losing a race
// to an identical one hits the unique index; the reaction is present either
// way, so that case also reports added.
func (r *reactionRepository) Toggle(postID, userID uint, emoji string) (bool, error) {
	var added bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		err := tx.Where("post_id = ? AND user_id = ? AND emoji = ?", postID, userID, emoji).
			First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		reaction := models.Reaction{PostID: postID, UserID: userID, Emoji: emoji}
		if err := tx.Create(&reaction).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				added = true
				return nil
			}
			return err
		}
		added = true
		return nil
	})
	return added, err
}

// CountsForPost aggregates reaction counts per emoji for one post. Emojis
// with no reactions are absent from the map.
func (r *reactionRepository) CountsForPost(postID uint) (map[string]int64, error) {
	type row struct {
		Emoji string
		Count int64
	}
	var rows []row
	err := r.db.Model(&models.Reaction{}).
		Select("emoji, count(id) as count").
		Where("post_id = ?", postID).
		Group("emoji").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Emoji] = row.Count
	}
	return counts, nil
}

// EmojisForUser lists the emojis one user has placed on one post.
func (r *reactionRepository) EmojisForUser(postID, userID uint) ([]string, error) {
	emojis := []string{}
	err := r.db.Model(&models.Reaction{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Pluck("emoji", &emojis).Error
	return emojis, err
}
