package models

import "time"

// UserTaskAssignment is the bridge row of the user/task many-to-many relation.
// The (user_id, task_id) pair is unique; rows never outlive either side.
type UserTaskAssignment struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_unique_user_task" json:"user_id"`
	TaskID     uint64    `gorm:"not null;uniqueIndex:idx_unique_user_task" json:"task_id"`
	AssignedAt time.Time `gorm:"not null;autoCreateTime" json:"assigned_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Task Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}
