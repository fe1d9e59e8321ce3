package models

import "time"

// Group is a named topic community that posts can be published into.
// Titles are unique; the database constraint is the authoritative guard.
type Group struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"uniqueIndex;not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Posts     []Post    `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}
