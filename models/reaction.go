package models

// Reaction is a user's emoji stamp on a post. The composite unique index
// allows at most one reaction per (post, user, emoji).
type Reaction struct {
	ID     uint   `gorm:"primaryKey;column:id"`
	PostID uint   `gorm:"column:post_id;uniqueIndex:idx_post_user_emoji"`
	UserID uint   `gorm:"column:user_id;uniqueIndex:idx_post_user_emoji"`
	Emoji  string `gorm:"size:16;uniqueIndex:idx_post_user_emoji"`
}

// TableName overrides the table name used by GORM
func (Reaction) TableName() string {
	return "reactions"
}
