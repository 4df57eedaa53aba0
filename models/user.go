package models

// User owns favorites. Password is persisted but never serialized.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	UserName string `json:"user_name" gorm:"type:varchar(250);not null"`
	Password string `json:"-" gorm:"type:varchar(250);not null"`
}
