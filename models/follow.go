package models

import "time"

// Follow represents a directed "follower receives followee's posts" edge
// between two users. The (follower, followed) pair is unique; duplicate
// inserts are rejected by the composite index.
type Follow struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserFollowingID     uint      `gorm:"not null;uniqueIndex:idx_following_followed" json:"user_following_id"`
	UserBeingFollowedID uint      `gorm:"not null;uniqueIndex:idx_following_followed" json:"user_being_followed_id"`
	CreatedAt           time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:UserFollowingID" json:"follower,omitempty"`
	Followed User `gorm:"foreignKey:UserBeingFollowedID" json:"followed,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
