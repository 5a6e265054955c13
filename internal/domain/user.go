package domain

import "time"

// User describes a registered customer. Users are created once at
// registration and never mutated or deleted afterwards.
type User struct {
	ID           int64
	FullName     string
	Username     string // stored lowercase
	PasswordHash string // bcrypt
	Phone        string
	CreatedAt    time.Time
}

func NewUser(fullName, username, passwordHash, phone string) *User {
	return &User{
		FullName:     fullName,
		Username:     username,
		PasswordHash: passwordHash,
		Phone:        phone,
	}
}

// AdminCredential is a persisted admin login, independent of customer users.
type AdminCredential struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
}
