package repository

import (
	"github.com/yukikurage/kanban-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Create inserts a new assignment row. A duplicate (user, task) pair fails
// with gorm.ErrDuplicatedKey via the unique index.
func (r *GormAssignmentRepository) Create(assignment *models.UserTaskAssignment) error {
	return r.db.Create(assignment).Error
}

// CreateIgnoringDuplicates inserts assignment rows, silently skipping pairs
// that already exist.
func (r *GormAssignmentRepository) CreateIgnoringDuplicates(assignments []models.UserTaskAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&assignments).Error
}

// Find returns the assignment for a (task, user) pair
func (r *GormAssignmentRepository) Find(taskID, userID uint64) (*models.UserTaskAssignment, error) {
	var assignment models.UserTaskAssignment
	if err := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Delete removes the assignment for a (task, user) pair
func (r *GormAssignmentRepository) Delete(taskID, userID uint64) error {
	return r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.UserTaskAssignment{}).Error
}

// List returns all assignment rows
func (r *GormAssignmentRepository) List() ([]models.UserTaskAssignment, error) {
	var assignments []models.UserTaskAssignment
	if err := r.db.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
