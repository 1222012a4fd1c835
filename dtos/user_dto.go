package dtos

import "github.com/cppla/userboard/models"

// UserIn is the validated payload for creating a user. Nested posts are
// optional and validated individually when present.
type UserIn struct {
	ID       string   `json:"id" binding:"omitempty,uuid4"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Posts    []PostIn `json:"posts" binding:"omitempty,dive"`
}

// ToModel converts the payload into a User entity with its nested posts.
func (u UserIn) ToModel() models.User {
	user := models.User{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
	}
	for _, p := range u.Posts {
		user.Posts = append(user.Posts, p.ToModel())
	}
	return user
}

// UserUpdate is the partial payload accepted on update. Every field is
// optional; email format is still enforced when the field is present.
type UserUpdate struct {
	Email    string   `json:"email" binding:"omitempty,email"`
	Password string   `json:"password"`
	Posts    []PostIn `json:"posts" binding:"omitempty,dive"`
}

// ToModel converts the partial payload into a sparse User entity; zero-value
// fields are treated as "not supplied" by the service merge.
func (u UserUpdate) ToModel() models.User {
	user := models.User{
		Email:    u.Email,
		Password: u.Password,
	}
	for _, p := range u.Posts {
		user.Posts = append(user.Posts, p.ToModel())
	}
	return user
}

// UserOut is the serialized view of a user. The password never appears here,
// which is how it is kept out of every response without the services having
// to strip it.
type UserOut struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Posts []PostOut `json:"posts"`
}

// NewUserOut projects a User entity onto its API view.
func NewUserOut(u models.User) UserOut {
	return UserOut{
		ID:    u.ID,
		Email: u.Email,
		Posts: NewPostOuts(u.Posts),
	}
}

// TitlesOut is the denormalized email-plus-titles projection.
type TitlesOut struct {
	Email  string   `json:"email"`
	Titles []string `json:"titles"`
}
