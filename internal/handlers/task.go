package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/kanban-api/internal/apierrors"
	"github.com/yukikurage/kanban-api/internal/dto"
	"github.com/yukikurage/kanban-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks, optionally filtered by board column.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var column *string
	if v := c.Query("column"); v != "" {
		column = &v
	}

	tasks, err := h.taskService.List(column)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.Respond(c, services.ErrTaskNotFound)
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task, optionally assigning the listed users.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title         string   `json:"title"`
		Description   *string  `json:"description"`
		Priority      *string  `json:"priority"`
		Deadline      *string  `json:"deadline"`
		DateCompleted *int64   `json:"date_completed"`
		CurrentColumn *string  `json:"current_column"`
		Assignees     []dto.ID `json:"assignees"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.Validation("Invalid request body"))
		return
	}

	assignees := make([]uint64, len(req.Assignees))
	for i, id := range req.Assignees {
		assignees[i] = uint64(id)
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Deadline:      req.Deadline,
		DateCompleted: req.DateCompleted,
		CurrentColumn: req.CurrentColumn,
		Assignees:     assignees,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask patches only the fields present in the request body. An
// explicit null deadline clears it.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.Respond(c, services.ErrTaskNotFound)
		return
	}

	// Parse raw JSON to detect which fields were sent.
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.Respond(c, apierrors.Validation("Invalid request body"))
		return
	}

	var input services.UpdateTaskInput
	if v, ok := raw["title"].(string); ok {
		input.Title = &v
	}
	if v, ok := raw["description"].(string); ok {
		input.Description = &v
	}
	if v, ok := raw["priority"].(string); ok {
		input.Priority = &v
	}
	if v, present := raw["deadline"]; present {
		if v == nil {
			input.ClearDeadline = true
		} else if s, ok := v.(string); ok {
			input.Deadline = &s
		}
	}
	if v, ok := raw["date_completed"].(float64); ok {
		n := int64(v)
		input.DateCompleted = &n
	}
	if v, ok := raw["current_column"].(string); ok {
		input.CurrentColumn = &v
	}

	task, err := h.taskService.Update(id, input)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.Respond(c, services.ErrTaskNotFound)
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}
