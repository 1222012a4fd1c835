package dtos

import "github.com/cppla/userboard/models"

// PostIn is the validated payload for a post supplied by a client, either on
// its own or nested inside a user payload. A client-supplied id passes
// validation but is always replaced server-side.
type PostIn struct {
	ID      string `json:"id" binding:"omitempty,uuid4"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ToModel converts the payload into a Post entity.
func (p PostIn) ToModel() models.Post {
	return models.Post{
		ID:      p.ID,
		Title:   p.Title,
		Message: p.Message,
	}
}

// PostOut is the serialized view of a post. Only the exposed fields leave the
// process; the owner reference stays internal.
type PostOut struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NewPostOut projects a Post entity onto its API view.
func NewPostOut(p models.Post) PostOut {
	return PostOut{
		ID:      p.ID,
		Title:   p.Title,
		Message: p.Message,
	}
}

// NewPostOuts projects a slice of posts, returning an empty slice rather than
// nil so callers always serialize a JSON array.
func NewPostOuts(posts []models.Post) []PostOut {
	out := make([]PostOut, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostOut(p))
	}
	return out
}
