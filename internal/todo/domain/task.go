package domain

import "time"

type Task struct {
	ID          uint64
	UserID      uint64
	TodoID      uint64
	Description string
	Done        bool
	Priority    float64
	CreatedAt   time.Time
}

// SortField names a task attribute tasks can be ordered by.
type SortField string

const (
	SortByPriority    SortField = "priority"
	SortByID          SortField = "task_id"
	SortByDescription SortField = "description"
	SortByStatus      SortField = "status"
	SortByInsertion   SortField = "task_insertion_time"
)

// SortOrder is asc or desc.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// SortKey is one level of a task ordering; earlier keys win ties.
type SortKey struct {
	Field SortField
	Order SortOrder
}
