package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"fittrack/internal/auth"
	apperrors "fittrack/internal/errors"
	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/service"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	users service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// CredentialsRequest is the register/login payload.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RuleMessage implements validation.RuleMessager.
func (CredentialsRequest) RuleMessage(field, tag string) string {
	switch {
	case field == "Email" && tag == "required":
		return "Email is required"
	case field == "Email":
		return "Email must be a valid email address"
	case field == "Password" && tag == "required":
		return "Password is required"
	case field == "Password":
		return "Password must be at least 6 characters long"
	}
	return ""
}

// normalize trims and lowercases the email before validation so casing and
// whitespace variants of the same address land on one account.
func (r *CredentialsRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// UserSummary is the slice of the user record returned next to a token.
type UserSummary struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.Error
// @Router /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	user, token, err := h.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return apperrors.InvalidInput("Email already registered")
		}
		return err
	}

	setTokenCookie(c, token)
	return c.JSON(http.StatusCreated, authResponse(user, token))
}

// Login godoc
// @Summary Login with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	user, token, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.Unauthenticated("Invalid email or password")
		}
		return err
	}

	setTokenCookie(c, token)
	return c.JSON(http.StatusOK, authResponse(user, token))
}

// Profile godoc
// @Summary Get the authenticated user's record
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.Error
// @Router /users/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := bindRequest(c, &req, req.normalize); err != nil {
		return nil, err
	}
	return &req, nil
}

func authResponse(user *model.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  UserSummary{Email: user.Email, Role: user.Role},
	}
}

// setTokenCookie mirrors the token into the cookie the authenticator accepts
// as a header fallback.
func setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.TokenTTL),
		HttpOnly: true,
	})
}
