package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/kanban-api/internal/apierrors"
	"github.com/yukikurage/kanban-api/internal/models"
	"github.com/yukikurage/kanban-api/internal/password"
	"github.com/yukikurage/kanban-api/internal/repository"
	"github.com/yukikurage/kanban-api/internal/snowflake"
)

var (
	ErrUsernameTaken = apierrors.Conflict("Username already exists")
	ErrUserNotFound  = apierrors.NotFound("User not found")
)

// UserService handles user business logic.
type UserService struct {
	userRepo repository.UserRepository
	gen      *snowflake.Generator
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, gen *snowflake.Generator) *UserService {
	return &UserService{
		userRepo: userRepo,
		gen:      gen,
	}
}

// CreateUserInput represents the information to create a new user.
type CreateUserInput struct {
	Username       string
	Password       string
	DisplayName    string
	ProfilePicture *string
	IsAdmin        *bool
}

// UpdateUserInput represents a partial user update. Nil fields were absent
// from the request and stay untouched.
type UpdateUserInput struct {
	Username       *string
	Password       *string
	DisplayName    *string
	ProfilePicture *string
	IsAdmin        *bool
}

// List returns all users.
func (s *UserService) List() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns a user by ID.
func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id, "Assignments")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Create validates the input, hashes the password, assigns a generated ID
// and stores the user. The username pre-check is an optimization only; the
// store's unique constraint is the final arbiter, and both paths yield the
// same conflict outcome.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if input.Username == "" {
		return nil, apierrors.Validation("Missing required field: username")
	}
	if input.Password == "" {
		return nil, apierrors.Validation("Missing required field: password")
	}
	if input.DisplayName == "" {
		return nil, apierrors.Validation("Missing required field: display_name")
	}

	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.gen.Next()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	user := &models.User{
		ID:             id,
		Username:       input.Username,
		Password:       hashed,
		DisplayName:    input.DisplayName,
		ProfilePicture: fmt.Sprintf("/assets/avatars/%d.png", id),
		DateCreated:    time.Now().Unix(),
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.userRepo.FindByID(user.ID, "Assignments")
}

// Update patches only the fields present in the input. A username change
// re-checks uniqueness excluding the record itself; a password change
// re-hashes.
func (s *UserService) Update(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Username != nil && *input.Username != user.Username {
		existing, err := s.userRepo.FindByUsername(*input.Username)
		if err == nil && existing.ID != id {
			return nil, ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		user.Username = *input.Username
	}
	if input.Password != nil {
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.userRepo.FindByID(id, "Assignments")
}

// Delete removes a user; its assignment rows go with it.
func (s *UserService) Delete(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
