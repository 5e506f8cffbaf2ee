package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // unique, login identifier
	Salt         string // per-user random salt, hex encoded
	PasswordHash string // PBKDF2-SHA512 digest, hex encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
