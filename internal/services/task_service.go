package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/kanban-api/internal/apierrors"
	"github.com/yukikurage/kanban-api/internal/models"
	"github.com/yukikurage/kanban-api/internal/repository"
	"github.com/yukikurage/kanban-api/internal/snowflake"
)

var (
	ErrTaskNotFound  = apierrors.NotFound("Task not found")
	ErrTitleRequired = apierrors.Validation("Missing required field: title")
)

func errInvalidPriority() error {
	return apierrors.Validation(fmt.Sprintf("Invalid priority. Must be one of: %v", models.ValidPriorities))
}

func errInvalidColumn() error {
	return apierrors.Validation(fmt.Sprintf("Invalid column. Must be one of: %v", models.ValidColumns))
}

// TaskService handles task business logic.
type TaskService struct {
	taskRepo   repository.TaskRepository
	userRepo   repository.UserRepository
	assignRepo repository.AssignmentRepository
	gen        *snowflake.Generator
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, assignRepo repository.AssignmentRepository, gen *snowflake.Generator) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		userRepo:   userRepo,
		assignRepo: assignRepo,
		gen:        gen,
	}
}

// CreateTaskInput represents input for creating a task. Assignee IDs that do
// not reference an existing user are skipped silently.
type CreateTaskInput struct {
	Title         string
	Description   *string
	Priority      *string
	Deadline      *string
	DateCompleted *int64
	CurrentColumn *string
	Assignees     []uint64
}

// UpdateTaskInput represents a partial task update. Nil fields were absent
// from the request. ClearDeadline distinguishes an explicit null deadline
// from an absent one.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	Priority      *string
	Deadline      *string
	ClearDeadline bool
	DateCompleted *int64
	CurrentColumn *string
}

// List returns tasks, optionally filtered to one board column.
func (s *TaskService) List(column *string) ([]models.Task, error) {
	filter := repository.TaskFilter{}
	if column != nil {
		c := models.TaskColumn(*column)
		filter.Column = &c
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns a task by ID.
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "Assignments")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Create validates enums, fills defaults, assigns a generated ID and stores
// the task, then assigns any listed users that exist.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	priority := models.PriorityMedium
	if input.Priority != nil {
		priority = models.TaskPriority(*input.Priority)
		if !priority.Valid() {
			return nil, errInvalidPriority()
		}
	}

	column := models.ColumnTodo
	if input.CurrentColumn != nil {
		column = models.TaskColumn(*input.CurrentColumn)
		if !column.Valid() {
			return nil, errInvalidColumn()
		}
	}

	id, err := s.gen.Next()
	if err != nil {
		return nil, fmt.Errorf("failed to generate task ID: %w", err)
	}

	task := &models.Task{
		ID:            id,
		Title:         input.Title,
		Priority:      priority,
		Deadline:      input.Deadline,
		DateCreated:   time.Now().Unix(),
		DateCompleted: input.DateCompleted,
		CurrentColumn: column,
	}
	if input.Description != nil {
		task.Description = *input.Description
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := s.assignExisting(task.ID, input.Assignees); err != nil {
		return nil, err
	}

	return s.taskRepo.FindByID(task.ID, "Assignments")
}

// Update patches only the fields present in the input. A client-supplied
// date_completed is applied before the column change, so the done-transition
// auto-stamp never overwrites it.
func (s *TaskService) Update(id uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		priority := models.TaskPriority(*input.Priority)
		if !priority.Valid() {
			return nil, errInvalidPriority()
		}
		task.Priority = priority
	}
	if input.ClearDeadline {
		task.Deadline = nil
	} else if input.Deadline != nil {
		task.Deadline = input.Deadline
	}
	if input.DateCompleted != nil {
		task.DateCompleted = input.DateCompleted
	}
	if input.CurrentColumn != nil {
		column := models.TaskColumn(*input.CurrentColumn)
		if !column.Valid() {
			return nil, errInvalidColumn()
		}
		task.CurrentColumn = column

		// First transition to done stamps the completion time, exactly once.
		if column == models.ColumnDone && task.DateCompleted == nil {
			now := time.Now().Unix()
			task.DateCompleted = &now
		}
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(id, "Assignments")
}

// Delete removes a task; its assignment rows go with it.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// assignExisting creates assignment rows for the user IDs that exist,
// skipping unknown IDs and already-assigned pairs.
func (s *TaskService) assignExisting(taskID uint64, userIDs []uint64) error {
	var assignments []models.UserTaskAssignment
	seen := make(map[uint64]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}
		if _, err := s.userRepo.FindByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return fmt.Errorf("failed to verify assignee: %w", err)
		}
		assignments = append(assignments, models.UserTaskAssignment{
			TaskID: taskID,
			UserID: userID,
		})
	}

	if err := s.assignRepo.CreateIgnoringDuplicates(assignments); err != nil {
		return fmt.Errorf("failed to assign users: %w", err)
	}
	return nil
}
