package dto

import (
	"time"

	"github.com/yukikurage/kanban-api/internal/models"
)

// TaskDTO represents a task in API responses.
type TaskDTO struct {
	ID            ID                  `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Priority      models.TaskPriority `json:"priority"`
	Deadline      *string             `json:"deadline"`
	DateCreated   int64               `json:"date_created"`
	DateCompleted *int64              `json:"date_completed"`
	CurrentColumn models.TaskColumn   `json:"current_column"`
	CreatedAt     time.Time           `json:"created_at"`
	Assignees     []ID                `json:"assignees"`
}

// ToTaskDTO converts a Task model to TaskDTO.
func ToTaskDTO(task models.Task) TaskDTO {
	assignees := make([]ID, len(task.Assignments))
	for i, assignment := range task.Assignments {
		assignees[i] = ID(assignment.UserID)
	}

	return TaskDTO{
		ID:            ID(task.ID),
		Title:         task.Title,
		Description:   task.Description,
		Priority:      task.Priority,
		Deadline:      task.Deadline,
		DateCreated:   task.DateCreated,
		DateCompleted: task.DateCompleted,
		CurrentColumn: task.CurrentColumn,
		CreatedAt:     task.CreatedAt,
		Assignees:     assignees,
	}
}

// ToTaskDTOs converts a slice of Task models.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
