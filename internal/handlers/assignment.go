package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/kanban-api/internal/apierrors"
	"github.com/yukikurage/kanban-api/internal/dto"
	"github.com/yukikurage/kanban-api/internal/services"
)

// AssignmentHandler coordinates assignment-related HTTP handlers.
type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// assignRequest carries the user side of an assign/unassign call. user_id is
// a pointer so a missing field is distinguishable from user 0.
type assignRequest struct {
	UserID *dto.ID `json:"user_id"`
}

// AssignTask assigns a user to a task.
func (h *AssignmentHandler) AssignTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		apierrors.Respond(c, services.ErrTaskNotFound)
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil {
		apierrors.Respond(c, apierrors.Validation("Missing user_id"))
		return
	}

	assignment, err := h.assignmentService.Assign(taskID, uint64(*req.UserID))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentDTO(*assignment))
}

// UnassignTask removes a user's assignment from a task.
func (h *AssignmentHandler) UnassignTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		apierrors.Respond(c, services.ErrAssignmentNotFound)
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil {
		apierrors.Respond(c, apierrors.Validation("Missing user_id"))
		return
	}

	if err := h.assignmentService.Unassign(taskID, uint64(*req.UserID)); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User unassigned successfully",
	})
}

// ListAssignments returns all assignment rows.
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.List()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTOs(assignments))
}
