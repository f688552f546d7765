package main

import (
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yukikurage/kanban-api/internal/config"
	"github.com/yukikurage/kanban-api/internal/database"
	"github.com/yukikurage/kanban-api/internal/handlers"
	"github.com/yukikurage/kanban-api/internal/logger"
	"github.com/yukikurage/kanban-api/internal/middleware"
	"github.com/yukikurage/kanban-api/internal/repository"
	"github.com/yukikurage/kanban-api/internal/services"
	"github.com/yukikurage/kanban-api/internal/snowflake"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Log.Fatalf("Failed to run migrations: %v", err)
	}

	// One generator instance owns the ID clock state for the whole process.
	gen, err := snowflake.New(cfg.SnowflakeNode)
	if err != nil {
		logger.Log.Fatalf("Failed to create ID generator: %v", err)
	}

	// Wire repositories, services and handlers
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assignRepo := repository.NewAssignmentRepository(db)

	userService := services.NewUserService(userRepo, gen)
	taskService := services.NewTaskService(taskRepo, userRepo, assignRepo, gen)
	assignmentService := services.NewAssignmentService(assignRepo, taskRepo, userRepo)
	authService := services.NewAuthService(userRepo)

	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	authHandler := handlers.NewAuthHandler(authService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowOrigins, ",")
	}
	r.Use(cors.New(corsConfig))

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/assign", assignmentHandler.AssignTask)
			tasks.POST("/:id/unassign", assignmentHandler.UnassignTask)
		}

		api.GET("/assignments", assignmentHandler.ListAssignments)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}
	}

	// Start server
	logger.Log.Infow("server starting", "addr", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
