package models

// User represents an account that owns posts. The Password column holds a
// bcrypt hash and is never rendered to JSON.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Posts    []Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"posts"`
}
