package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/kanban-api/internal/models"
	"github.com/yukikurage/kanban-api/internal/repository"
	"github.com/yukikurage/kanban-api/internal/snowflake"
)

type serviceTestEnv struct {
	db          *gorm.DB
	users       *UserService
	tasks       *TaskService
	assignments *AssignmentService
	auth        *AuthService

	userRepo   repository.UserRepository
	taskRepo   repository.TaskRepository
	assignRepo repository.AssignmentRepository
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.UserTaskAssignment{},
	)
	require.NoError(t, err)

	gen, err := snowflake.New(1)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assignRepo := repository.NewAssignmentRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return serviceTestEnv{
		db:          db,
		users:       NewUserService(userRepo, gen),
		tasks:       NewTaskService(taskRepo, userRepo, assignRepo, gen),
		assignments: NewAssignmentService(assignRepo, taskRepo, userRepo),
		auth:        NewAuthService(userRepo),
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		assignRepo:  assignRepo,
	}
}

func (env serviceTestEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	user, err := env.users.Create(CreateUserInput{
		Username:    username,
		Password:    "supersecret",
		DisplayName: username,
	})
	require.NoError(t, err)
	return user
}

func (env serviceTestEnv) createTask(t *testing.T, title string) *models.Task {
	t.Helper()

	task, err := env.tasks.Create(CreateTaskInput{Title: title})
	require.NoError(t, err)
	return task
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func boolPtr(b bool) *bool { return &b }
