package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/kanban-api/internal/apierrors"
	"github.com/yukikurage/kanban-api/internal/dto"
	"github.com/yukikurage/kanban-api/internal/services"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// parseID parses a numeric path segment. A non-numeric segment behaves like
// an unknown resource, so callers respond with their not-found error.
func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ListUsers returns all users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// GetUser returns a specific user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.Respond(c, services.ErrUserNotFound)
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// CreateUser creates a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Username       string  `json:"username"`
		Password       string  `json:"password"`
		DisplayName    string  `json:"display_name"`
		ProfilePicture *string `json:"profile_picture"`
		IsAdmin        *bool   `json:"is_admin"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.Validation("Invalid request body"))
		return
	}

	user, err := h.userService.Create(services.CreateUserInput{
		Username:       req.Username,
		Password:       req.Password,
		DisplayName:    req.DisplayName,
		ProfilePicture: req.ProfilePicture,
		IsAdmin:        req.IsAdmin,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// UpdateUser patches only the fields present in the request body.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.Respond(c, services.ErrUserNotFound)
		return
	}

	// Parse raw JSON to detect which fields were sent.
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.Respond(c, apierrors.Validation("Invalid request body"))
		return
	}

	var input services.UpdateUserInput
	if v, ok := raw["username"].(string); ok {
		input.Username = &v
	}
	if v, ok := raw["password"].(string); ok {
		input.Password = &v
	}
	if v, ok := raw["display_name"].(string); ok {
		input.DisplayName = &v
	}
	if v, ok := raw["profile_picture"].(string); ok {
		input.ProfilePicture = &v
	}
	if v, ok := raw["is_admin"].(bool); ok {
		input.IsAdmin = &v
	}

	user, err := h.userService.Update(id, input)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser deletes a user.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.Respond(c, services.ErrUserNotFound)
		return
	}

	if err := h.userService.Delete(id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}
