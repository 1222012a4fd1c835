package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cppla/userboard/models"
	"github.com/cppla/userboard/repositories"
	"github.com/cppla/userboard/utils"
)

// PostsService orchestrates post persistence. The owning user id must already
// be set on any post handed to Save; posts without an owner are rejected by
// the store.
type PostsService struct {
	posts *repositories.PostRepository
}

// NewPostsService creates the service over the given database handle.
func NewPostsService(db *gorm.DB) *PostsService {
	return &PostsService{posts: repositories.NewPostRepository(db)}
}

// Save persists a new post under a freshly generated id, discarding any id
// the caller set. Title and message are sanitized before they are stored.
func (s *PostsService) Save(post *models.Post) (*models.Post, error) {
	post.ID = uuid.NewString()
	post.Title = utils.Sanitize(post.Title)
	post.Message = utils.Sanitize(post.Message)
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update merges the supplied attributes onto the existing post and persists
// it. The post keeps its id. Returns ErrNotFound when the id is unknown.
func (s *PostsService) Update(id string, attrs *models.Post) (*models.Post, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attrs.Title != "" {
		post.Title = utils.Sanitize(attrs.Title)
	}
	if attrs.Message != "" {
		post.Message = utils.Sanitize(attrs.Message)
	}
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// FindByID returns the post, or (nil, nil) when absent.
func (s *PostsService) FindByID(id string) (*models.Post, error) {
	return s.posts.FindByID(id)
}

// GetByID returns the post, or ErrNotFound when absent.
func (s *PostsService) GetByID(id string) (*models.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// FindByUserID returns every post owned by the user, in store order. An
// unknown user id yields an empty slice, not an error.
func (s *PostsService) FindByUserID(userID string) ([]models.Post, error) {
	return s.posts.FindByUserID(userID)
}

// DeleteByID removes the post after an existence check and returns the
// deleted record.
func (s *PostsService) DeleteByID(id string) (*models.Post, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.posts.Delete(post); err != nil {
		return nil, err
	}
	return post, nil
}
