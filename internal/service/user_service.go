package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fittrack/internal/auth"
	"fittrack/internal/cache"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

const (
	bcryptCost = 10
	// identityCacheTTL bounds how long a resolved identity is served from
	// redis. Users are never mutated or deleted through this API, so a stale
	// entry cannot change an authorization outcome.
	identityCacheTTL = 5 * time.Minute
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when a token subject has no user record.
	ErrUserNotFound = errors.New("user not found")
)

// UserService handles registration, login and per-request identity resolution.
type UserService interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Resolve(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
	cache *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, jwt *auth.JWTService, cache *cache.Client) UserService {
	return &userService{users: users, jwt: jwt, cache: cache}
}

// Register creates a user with a hashed password and the default role, then
// issues a token so registration doubles as login. The email must already be
// normalized (trimmed, lowercased) by the caller.
func (s *userService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns a fresh token.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Resolve loads the user behind a token subject, cache-aside through redis.
// The loaded record never includes the password hash.
func (s *userService) Resolve(ctx context.Context, id uuid.UUID) (*model.User, error) {
	key := identityCacheKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, key, payload, identityCacheTTL)
	}
	return user, nil
}

func identityCacheKey(id uuid.UUID) string {
	return "identity:" + id.String()
}
