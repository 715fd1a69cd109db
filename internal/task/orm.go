package task

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusDone       Status = "Done"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Title       string     `json:"title" gorm:"size:100;not null"`
	Description string     `json:"description" gorm:"size:500"`
	Status      Status     `json:"status" gorm:"type:text;not null;default:'To Do'"`
	Priority    Priority   `json:"priority" gorm:"type:text;not null;default:'Medium'"`
	DueDate     *time.Time `json:"due_date"`
	EmployeeID  uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
}

// TaskWithOwner is the admin-facing projection: a task joined with the
// minimal owner fields needed for listing, filtering and export.
type TaskWithOwner struct {
	Task
	OwnerName       string `json:"owner_name" gorm:"column:owner_name"`
	OwnerDepartment string `json:"owner_department" gorm:"column:owner_department"`
}
