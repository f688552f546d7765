package models

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ValidPriorities lists the accepted priority values in display order.
var ValidPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the accepted priority values.
func (p TaskPriority) Valid() bool {
	for _, v := range ValidPriorities {
		if p == v {
			return true
		}
	}
	return false
}

type TaskColumn string

const (
	ColumnTodo     TaskColumn = "todo"
	ColumnProgress TaskColumn = "progress"
	ColumnReview   TaskColumn = "review"
	ColumnDone     TaskColumn = "done"
)

// ValidColumns lists the accepted board columns in board order.
var ValidColumns = []TaskColumn{ColumnTodo, ColumnProgress, ColumnReview, ColumnDone}

// Valid reports whether c is one of the accepted board columns.
func (c TaskColumn) Valid() bool {
	for _, v := range ValidColumns {
		if c == v {
			return true
		}
	}
	return false
}

type Task struct {
	ID            uint64       `gorm:"primarykey;autoIncrement:false" json:"id"`
	Title         string       `gorm:"type:varchar(255);not null" json:"title"`
	Description   string       `gorm:"type:text;not null" json:"description"`
	Priority      TaskPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	Deadline      *string      `gorm:"type:varchar(10)" json:"deadline"`
	DateCreated   int64        `gorm:"not null" json:"date_created"`
	DateCompleted *int64       `json:"date_completed"`
	CurrentColumn TaskColumn   `gorm:"type:varchar(20);not null;default:'todo';index" json:"current_column"`
	CreatedAt     time.Time    `json:"created_at"`

	// Relations
	Assignments []UserTaskAssignment `gorm:"foreignKey:TaskID" json:"-"`
}
