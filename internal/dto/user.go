package dto

import (
	"time"

	"github.com/yukikurage/kanban-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never
// appears here.
type UserDTO struct {
	ID             ID        `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	ProfilePicture string    `json:"profile_picture"`
	IsAdmin        bool      `json:"is_admin"`
	DateCreated    int64     `json:"date_created"`
	CreatedAt      time.Time `json:"created_at"`
	TasksAssigned  []ID      `json:"tasks_assigned"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	tasks := make([]ID, len(user.Assignments))
	for i, assignment := range user.Assignments {
		tasks[i] = ID(assignment.TaskID)
	}

	return UserDTO{
		ID:             ID(user.ID),
		Username:       user.Username,
		DisplayName:    user.DisplayName,
		ProfilePicture: user.ProfilePicture,
		IsAdmin:        user.IsAdmin,
		DateCreated:    user.DateCreated,
		CreatedAt:      user.CreatedAt,
		TasksAssigned:  tasks,
	}
}

// ToUserDTOs converts a slice of User models.
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
