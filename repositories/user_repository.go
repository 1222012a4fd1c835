package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cppla/userboard/models"
)

// UserRepository is a thin accessor over the users table.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository bound to the given database handle.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

// FindByID returns the user with their posts preloaded, or (nil, nil) when no
// such row exists.
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Posts").Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the user row only; nested posts are persisted by the caller.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Omit("Posts").Create(user).Error
}

// Update writes the user's own columns, leaving posts untouched.
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Omit("Posts").Save(user).Error
}

// Delete removes the user row by primary key.
func (r *UserRepository) Delete(user *models.User) error {
	return r.db.Delete(&models.User{}, "id = ?", user.ID).Error
}
