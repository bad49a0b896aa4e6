package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fittrack/internal/config"
	"fittrack/internal/db"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

const bcryptCost = 10

// The API never lets a caller pick a role, so the admin account is minted
// here: created from ADMIN_EMAIL/ADMIN_PASSWORD, or promoted if the email is
// already registered.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBName)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == model.RoleAdmin {
			log.Printf("%s is already an admin", email)
			return
		}
		existing.Role = model.RoleAdmin
		if err := users.Save(ctx, existing); err != nil {
			log.Fatalf("promote user: %v", err)
		}
		log.Printf("promoted %s to admin", email)

	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		admin := &model.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("created admin %s", email)

	default:
		log.Fatalf("lookup admin: %v", err)
	}
}
