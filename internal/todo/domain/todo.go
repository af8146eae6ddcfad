package domain

import "time"

type Todo struct {
	ID        uint64
	UserID    uint64
	Title     string
	CreatedAt time.Time
}
