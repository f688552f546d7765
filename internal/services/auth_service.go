package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yukikurage/kanban-api/internal/apierrors"
	"github.com/yukikurage/kanban-api/internal/models"
	"github.com/yukikurage/kanban-api/internal/password"
	"github.com/yukikurage/kanban-api/internal/repository"
)

// ErrInvalidCredentials is returned for an unknown username and for a wrong
// password alike, so a caller cannot probe which usernames exist.
var ErrInvalidCredentials = apierrors.Authentication("Invalid credentials")

// AuthService handles credential verification. It issues no session or
// token; login is a stateless check.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// LoginInput holds the credentials for verification.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies the credentials and returns the user record. A mismatch and
// an unknown username produce the identical error; a malformed stored hash
// is a server fault, not a credential failure.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := password.Verify(user.Password, input.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}

	return s.userRepo.FindByID(user.ID, "Assignments")
}
