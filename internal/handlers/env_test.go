package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/kanban-api/internal/models"
	"github.com/yukikurage/kanban-api/internal/repository"
	"github.com/yukikurage/kanban-api/internal/services"
	"github.com/yukikurage/kanban-api/internal/snowflake"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.UserTaskAssignment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	gen, err := snowflake.New(1)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assignRepo := repository.NewAssignmentRepository(db)

	userHandler := NewUserHandler(services.NewUserService(userRepo, gen))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo, userRepo, assignRepo, gen))
	assignmentHandler := NewAssignmentHandler(services.NewAssignmentService(assignRepo, taskRepo, userRepo))
	authHandler := NewAuthHandler(services.NewAuthService(userRepo))

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.GET("/users", userHandler.ListUsers)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/:id", userHandler.GetUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.POST("/tasks/:id/assign", assignmentHandler.AssignTask)
		api.POST("/tasks/:id/unassign", assignmentHandler.UnassignTask)

		api.GET("/assignments", assignmentHandler.ListAssignments)

		api.POST("/auth/login", authHandler.Login)
	}

	return r
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createUserRequest(t *testing.T, r *gin.Engine, username string) map[string]any {
	t.Helper()

	w := performRequest(t, r, http.MethodPost, "/api/users", map[string]any{
		"username":     username,
		"password":     "pw123",
		"display_name": username,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)
}

func createTaskRequest(t *testing.T, r *gin.Engine, title string) map[string]any {
	t.Helper()

	w := performRequest(t, r, http.MethodPost, "/api/tasks", map[string]any{
		"title": title,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)
}
