package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yukikurage/kanban-api/internal/apierrors"
	"github.com/yukikurage/kanban-api/internal/models"
	"github.com/yukikurage/kanban-api/internal/repository"
)

var (
	ErrAlreadyAssigned    = apierrors.Conflict("User already assigned to this task")
	ErrAssignmentNotFound = apierrors.NotFound("Assignment not found")
)

// AssignmentService handles the user/task bridge relation.
type AssignmentService struct {
	assignRepo repository.AssignmentRepository
	taskRepo   repository.TaskRepository
	userRepo   repository.UserRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignRepo repository.AssignmentRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *AssignmentService {
	return &AssignmentService{
		assignRepo: assignRepo,
		taskRepo:   taskRepo,
		userRepo:   userRepo,
	}
}

// Assign creates the bridge row for (task, user) after confirming both
// entities exist and no duplicate pair exists. A constraint violation at
// commit time is reported identically to the pre-check hit: two concurrent
// assigns of the same pair race safely.
func (s *AssignmentService) Assign(taskID, userID uint64) (*models.UserTaskAssignment, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.assignRepo.Find(taskID, userID); err == nil {
		return nil, ErrAlreadyAssigned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	assignment := &models.UserTaskAssignment{
		TaskID: taskID,
		UserID: userID,
	}
	if err := s.assignRepo.Create(assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return assignment, nil
}

// Unassign removes the bridge row for (task, user).
func (s *AssignmentService) Unassign(taskID, userID uint64) error {
	if _, err := s.assignRepo.Find(taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to find assignment: %w", err)
	}

	if err := s.assignRepo.Delete(taskID, userID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// List returns all bridge rows.
func (s *AssignmentService) List() ([]models.UserTaskAssignment, error) {
	assignments, err := s.assignRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}
