package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cppla/userboard/models"
)

// PostRepository is a thin accessor over the posts table.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a repository bound to the given database handle.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *PostRepository) WithTx(tx *gorm.DB) *PostRepository {
	return &PostRepository{db: tx}
}

// FindByID returns the post, or (nil, nil) when no such row exists.
func (r *PostRepository) FindByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByUserID returns every post owned by the given user in store order.
func (r *PostRepository) FindByUserID(userID string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts the post row.
func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update writes the post's columns.
func (r *PostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes the post row by primary key.
func (r *PostRepository) Delete(post *models.Post) error {
	return r.db.Delete(&models.Post{}, "id = ?", post.ID).Error
}

// DeleteByUserID removes every post owned by the given user.
func (r *PostRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Post{}).Error
}
