package models

import "time"

// Post represents a feed entry. AuthorID is nullable because rows created
// before authorship was tracked have no author.
type Post struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	AuthorID  *uint     `gorm:"column:user_id"`
	Text      string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"column:timestamp"`
}

// TableName overrides the table name used by GORM
func (Post) TableName() string {
	return "feed_posts"
}
