package models

// Post represents a message published by a user. The owning user is required;
// the foreign key cascades so deleting a user removes their posts.
type Post struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	UserID  string `gorm:"index;size:36;not null" json:"user_id"`
	User    *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
