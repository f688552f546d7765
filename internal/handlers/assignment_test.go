package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignmentHandler_AssignAndUnassign(t *testing.T) {
	r := setupTestRouter(t)
	alice := createUserRequest(t, r, "alice")
	task := createTaskRequest(t, r, "Write spec")

	w := performRequest(t, r, http.MethodPost, "/api/tasks/"+task["id"].(string)+"/assign", map[string]any{
		"user_id": alice["id"],
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, alice["id"], body["user_id"])
	require.Equal(t, task["id"], body["task_id"])
	require.NotEmpty(t, body["assigned_at"])

	w = performRequest(t, r, http.MethodPost, "/api/tasks/"+task["id"].(string)+"/unassign", map[string]any{
		"user_id": alice["id"],
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "User unassigned successfully", decodeBody(t, w)["message"])
}

func TestAssignmentHandler_Assign_MissingUserID(t *testing.T) {
	r := setupTestRouter(t)
	task := createTaskRequest(t, r, "Write spec")

	w := performRequest(t, r, http.MethodPost, "/api/tasks/"+task["id"].(string)+"/assign", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing user_id", decodeBody(t, w)["error"])
}

func TestAssignmentHandler_Assign_AlreadyAssigned(t *testing.T) {
	r := setupTestRouter(t)
	alice := createUserRequest(t, r, "alice")
	task := createTaskRequest(t, r, "Write spec")

	path := "/api/tasks/" + task["id"].(string) + "/assign"
	w := performRequest(t, r, http.MethodPost, path, map[string]any{"user_id": alice["id"]})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, r, http.MethodPost, path, map[string]any{"user_id": alice["id"]})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "User already assigned to this task", decodeBody(t, w)["error"])
}

func TestAssignmentHandler_Assign_MissingEntities(t *testing.T) {
	r := setupTestRouter(t)
	alice := createUserRequest(t, r, "alice")
	task := createTaskRequest(t, r, "Write spec")

	w := performRequest(t, r, http.MethodPost, "/api/tasks/424242/assign", map[string]any{
		"user_id": alice["id"],
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Task not found", decodeBody(t, w)["error"])

	w = performRequest(t, r, http.MethodPost, "/api/tasks/"+task["id"].(string)+"/assign", map[string]any{
		"user_id": "424242",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestAssignmentHandler_Unassign_NotFound(t *testing.T) {
	r := setupTestRouter(t)
	alice := createUserRequest(t, r, "alice")
	task := createTaskRequest(t, r, "Write spec")

	w := performRequest(t, r, http.MethodPost, "/api/tasks/"+task["id"].(string)+"/unassign", map[string]any{
		"user_id": alice["id"],
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Assignment not found", decodeBody(t, w)["error"])
}

func TestAssignmentHandler_List(t *testing.T) {
	r := setupTestRouter(t)
	alice := createUserRequest(t, r, "alice")
	task := createTaskRequest(t, r, "Write spec")

	w := performRequest(t, r, http.MethodPost, "/api/tasks/"+task["id"].(string)+"/assign", map[string]any{
		"user_id": alice["id"],
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, r, http.MethodGet, "/api/assignments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var assignments []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assignments))
	require.Len(t, assignments, 1)
	require.Equal(t, alice["id"], assignments[0]["user_id"])
	require.Equal(t, task["id"], assignments[0]["task_id"])
}
