package models

import "time"

// MaxMessageLength is the upper bound on message text length.
const MaxMessageLength = 140

// Message is a single post ("warble") owned by exactly one user.
// Messages are immutable once created; the only mutation is deletion.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"not null;size:140" json:"text"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
