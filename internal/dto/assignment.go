package dto

import (
	"time"

	"github.com/yukikurage/kanban-api/internal/models"
)

// AssignmentDTO represents a user/task assignment in API responses. The row
// ID is an internal auto-increment, so it stays a plain number.
type AssignmentDTO struct {
	ID         uint      `json:"id"`
	UserID     ID        `json:"user_id"`
	TaskID     ID        `json:"task_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// ToAssignmentDTO converts a UserTaskAssignment model to AssignmentDTO.
func ToAssignmentDTO(assignment models.UserTaskAssignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         assignment.ID,
		UserID:     ID(assignment.UserID),
		TaskID:     ID(assignment.TaskID),
		AssignedAt: assignment.AssignedAt,
	}
}

// ToAssignmentDTOs converts a slice of UserTaskAssignment models.
func ToAssignmentDTOs(assignments []models.UserTaskAssignment) []AssignmentDTO {
	dtos := make([]AssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		dtos[i] = ToAssignmentDTO(assignment)
	}
	return dtos
}
