package models

import "time"

// User is a rater identity managed by an admin. Users carry no credentials;
// the public rating flow picks one from the shared link.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
