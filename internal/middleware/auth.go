package middleware

import (
	"errors"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"fittrack/internal/auth"
	apperrors "fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/service"
)

// ContextUserKey is where Authenticate stores the resolved user on the echo
// context.
const ContextUserKey = "currentUser"

const claimsContextKey = "tokenClaims"

// Authenticate returns the middleware chain guarding every workout, meal and
// profile route: token verification followed by identity resolution. The
// token comes from the Authorization header or, as a fallback, the "token"
// cookie.
func Authenticate(jwtService *auth.JWTService, users service.UserService) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:token",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// One 401 message regardless of which verification step failed;
			// only the complete absence of a token gets its own message.
			if !tokenPresent(c) {
				return apperrors.Unauthenticated("No token provided")
			}
			return apperrors.Unauthenticated("Invalid or expired token")
		},
	})

	return []echo.MiddlewareFunc{verify, resolveIdentity(users)}
}

// resolveIdentity swaps verified claims for the stored user record and hangs
// it on the context for handlers.
func resolveIdentity(users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(*auth.Claims)
			if !ok {
				return apperrors.Unauthenticated("Invalid or expired token")
			}
			id, err := claims.UserID()
			if err != nil {
				return apperrors.Unauthenticated("Invalid or expired token")
			}

			user, err := users.Resolve(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, service.ErrUserNotFound) {
					return apperrors.Unauthenticated("User not found")
				}
				return err
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user attached by Authenticate, or nil
// on unguarded routes.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}

func tokenPresent(c echo.Context) bool {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ") {
		return true
	}
	cookie, err := c.Cookie("token")
	return err == nil && cookie.Value != ""
}
