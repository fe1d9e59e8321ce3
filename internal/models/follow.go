package models

import "time"

// Follow is a directed subscription edge from one user to another.
// The composite unique index makes the store the authoritative guard
// against duplicate edges under concurrent requests.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_follows_user_following" json:"user_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_user_following" json:"following_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Following   User      `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// FollowResponse is the outward representation of a follow edge. Only the
// two usernames are exposed, never internal identifiers.
type FollowResponse struct {
	User      string `json:"user"`
	Following string `json:"following"`
}

// Response builds the wire representation. Both user associations must be
// preloaded.
func (f *Follow) Response() FollowResponse {
	return FollowResponse{
		User:      f.User.Username,
		Following: f.Following.Username,
	}
}
