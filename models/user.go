package models

import "time"

// User is an account holder. Email is the login identity and is immutable
// after signup. The bcrypt hash is never serialized.
type User struct {
	ID             uint      `json:"user_id" gorm:"column:user_id;primaryKey"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Username       string    `json:"username" gorm:"size:50;not null"`
	Firstname      string    `json:"firstname" gorm:"size:100"`
	Lastname       string    `json:"lastname" gorm:"size:100"`
	HashedPassword string    `json:"-" gorm:"column:hashed_password;size:255;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
