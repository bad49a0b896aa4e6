package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	_ "fittrack/docs" // swagger docs

	"fittrack/internal/auth"
	"fittrack/internal/cache"
	"fittrack/internal/config"
	"fittrack/internal/db"
	"fittrack/internal/handler"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/router"
	"fittrack/internal/service"
)

// @title Fitness Tracker API
// @version 1.0
// @description Personal fitness tracking API: workouts, meals and progress, with JWT authentication and per-user ownership.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBName)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Workout{},
		&model.Meal{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	workoutRepo := repository.NewOwnedRepository[model.Workout, *model.Workout](gormDB)
	mealRepo := repository.NewOwnedRepository[model.Meal, *model.Meal](gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	userService := service.NewUserService(userRepo, jwtService, cacheClient)
	workoutService := service.NewResourceService(workoutRepo, "Workout")
	mealService := service.NewResourceService(mealRepo, "Meal")

	authHandler := handler.NewAuthHandler(userService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	mealHandler := handler.NewMealHandler(mealService)

	e := echo.New()
	router.Register(e, jwtService, userService, authHandler, workoutHandler, mealHandler)

	addr := ":" + cfg.Port
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
