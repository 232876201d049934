package model

import "time"

// User is an account of the demo API. Password holds a bcrypt hash.
type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:200;not null" json:"-"`
	Currency  int       `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
