package repository

import (
	"github.com/yukikurage/kanban-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List returns all users with their assignments
	List() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete removes a user and its assignment rows
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	Column *models.TaskColumn
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks, optionally filtered by board column
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes a task and its assignment rows
	Delete(id uint64) error
}

// AssignmentRepository defines the interface for the user/task bridge rows
type AssignmentRepository interface {
	// Create inserts a new assignment row
	Create(assignment *models.UserTaskAssignment) error

	// CreateIgnoringDuplicates inserts assignment rows, skipping pairs that
	// already exist
	CreateIgnoringDuplicates(assignments []models.UserTaskAssignment) error

	// Find returns the assignment for a (task, user) pair
	Find(taskID, userID uint64) (*models.UserTaskAssignment, error)

	// Delete removes the assignment for a (task, user) pair
	Delete(taskID, userID uint64) error

	// List returns all assignment rows
	List() ([]models.UserTaskAssignment, error)
}
