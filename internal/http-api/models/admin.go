package models

import "time"

// Admin is a dashboard account. Password holds a bcrypt hash and is never
// serialized.
type Admin struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Admin) TableName() string {
	return "admins"
}
