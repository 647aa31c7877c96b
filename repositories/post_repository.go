package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Samuel-pydev/Spill-Zone-bck/apperrors"
	"github.com/Samuel-pydev/Spill-Zone-bck/models"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) ListNewestFirst() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("timestamp DESC").Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post together with its reactions in one transaction, so
// no orphaned reaction rows are left behind.
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
