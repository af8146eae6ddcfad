package domain

import "time"

type User struct {
	ID           uint64
	Username     string
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
}
