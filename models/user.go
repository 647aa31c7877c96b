package models

// User represents an account in the database
type User struct {
	ID           uint   `gorm:"primaryKey;column:id"`
	Username     string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"column:hashed_password"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
