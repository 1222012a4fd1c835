package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cppla/userboard/dtos"
	"github.com/cppla/userboard/models"
	"github.com/cppla/userboard/repositories"
	"github.com/cppla/userboard/utils"
)

// UsersService orchestrates user persistence, including the explicit cascade
// over nested posts: saving a user writes the user row and every nested post
// in one transaction, deleting a user removes their posts first.
type UsersService struct {
	db    *gorm.DB
	users *repositories.UserRepository
	posts *PostsService
}

// NewUsersService creates the service over the given database handle.
func NewUsersService(db *gorm.DB, posts *PostsService) *UsersService {
	return &UsersService{
		db:    db,
		users: repositories.NewUserRepository(db),
		posts: posts,
	}
}

// Save persists a new user together with any nested posts. The user and every
// nested post get freshly generated ids regardless of what the caller set,
// and the password is stored as a bcrypt hash. Returns the persisted entity
// with generated ids.
func (s *UsersService) Save(user *models.User) (*models.User, error) {
	user.ID = uuid.NewString()
	for i := range user.Posts {
		user.Posts[i].ID = uuid.NewString()
		user.Posts[i].UserID = user.ID
		user.Posts[i].Title = utils.Sanitize(user.Posts[i].Title)
		user.Posts[i].Message = utils.Sanitize(user.Posts[i].Message)
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(user); err != nil {
			return err
		}
		postRepo := repositories.NewPostRepository(tx)
		for i := range user.Posts {
			if err := postRepo.Create(&user.Posts[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update merges the supplied attributes onto the existing user and persists
// the result. The user keeps its id, and so do its existing posts; nested
// posts supplied here are stored as new posts under fresh ids. Returns
// ErrNotFound when the id is unknown.
func (s *UsersService) Update(id string, attrs *models.User) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if attrs.Email != "" {
		user.Email = attrs.Email
	}
	if attrs.Password != "" {
		hash, err := utils.HashPassword(attrs.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Update(user); err != nil {
			return err
		}
		postRepo := repositories.NewPostRepository(tx)
		for _, p := range attrs.Posts {
			p.ID = uuid.NewString()
			p.UserID = user.ID
			p.Title = utils.Sanitize(p.Title)
			p.Message = utils.Sanitize(p.Message)
			if err := postRepo.Create(&p); err != nil {
				return err
			}
			user.Posts = append(user.Posts, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID returns the user with posts preloaded, or (nil, nil) when absent.
func (s *UsersService) FindByID(id string) (*models.User, error) {
	return s.users.FindByID(id)
}

// GetByID returns the user with posts preloaded, or ErrNotFound when absent.
func (s *UsersService) GetByID(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// DeleteByID removes the user and all their posts in one transaction after an
// existence check, and returns the deleted record.
func (s *UsersService) DeleteByID(id string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		postRepo := repositories.NewPostRepository(tx)
		if err := postRepo.DeleteByUserID(user.ID); err != nil {
			return err
		}
		return s.users.WithTx(tx).Delete(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetEmailAndPostTitles returns the user's email together with the titles of
// all their posts, in store order. Returns ErrNotFound when the user is
// absent.
func (s *UsersService) GetEmailAndPostTitles(id string) (*dtos.TitlesOut, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	return &dtos.TitlesOut{Email: user.Email, Titles: titles}, nil
}
