package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	_ "spendtrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"

	"spendtrack/internal/auth"
	"spendtrack/internal/cache"
	"spendtrack/internal/config"
	"spendtrack/internal/db"
	"spendtrack/internal/handler"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
	"spendtrack/internal/router"
	"spendtrack/internal/service"
)

// @title Spendtrack API
// @version 1.0
// @description Task and expense tracker with JWT authentication and per-user scoping.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Logger.SetLevel(logLevel(cfg.LogLevel))

	if cfg.SecretKey == config.DefaultSecretKey {
		log.Println("WARNING: using default SECRET_KEY; set a secure SECRET_KEY in production")
	}

	gormDB, err := db.NewMySQL(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Currency{},
		&model.Expense{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)
	currencyRepo := repository.NewCurrencyRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SecretKey, time.Duration(cfg.AccessTokenExpires)*time.Minute)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	taskService := service.NewTaskService(taskRepo)
	expenseService := service.NewExpenseService(expenseRepo, currencyRepo, cacheClient)
	currencyService := service.NewCurrencyService(currencyRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		taskHandler,
		expenseHandler,
		currencyHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// logLevel maps the LOG_LEVEL environment value onto Echo's logger levels.
func logLevel(level string) gommonlog.Lvl {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return gommonlog.DEBUG
	case "WARN", "WARNING":
		return gommonlog.WARN
	case "ERROR":
		return gommonlog.ERROR
	case "OFF":
		return gommonlog.OFF
	default:
		return gommonlog.INFO
	}
}
