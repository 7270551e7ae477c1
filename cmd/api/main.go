package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-todo-backend/config"
	_ "go-todo-backend/docs" // Important for Swagger
	v1 "go-todo-backend/internal/delivery/http/v1"
	"go-todo-backend/internal/repository/postgres"
	"go-todo-backend/internal/usecase"
	"go-todo-backend/pkg/auth"
	"go-todo-backend/pkg/database"
	"go-todo-backend/pkg/logger"
	"go-todo-backend/pkg/redis"
	"go-todo-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           To-Do Backend API
// @version         1.0
// @description     Multi-user to-do list backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting to-do backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}

	// 5. Register custom validators on gin's binding validator
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	roleRepo := postgres.NewRoleRepository(dbPool)
	listRepo := postgres.NewTaskListRepository(dbPool)
	taskRepo := postgres.NewTaskRepository(dbPool)

	// 7. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	listUC := usecase.NewTaskListUsecase(listRepo)
	taskUC := usecase.NewTaskUsecase(taskRepo, listUC)
	userUC := usecase.NewUserUsecase(userRepo, roleRepo, listUC, taskRepo, tokens)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:     userUC,
		TaskListUC: listUC,
		TaskUC:     taskUC,
		Tokens:     tokens,
		Config:     cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
