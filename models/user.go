// Package models contains data structures for the application's domain models.
package models

import "time"

// Default profile images used when a user has not uploaded their own.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents an account in the Warbler application.
// Password always holds the bcrypt hash, never the plaintext.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null;size:64" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null;size:254" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ImageURL       string    `gorm:"size:512" json:"image_url"`
	HeaderImageURL string    `gorm:"size:512" json:"header_image_url"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Messages       []Message `gorm:"foreignKey:UserID" json:"messages,omitempty"`
}
