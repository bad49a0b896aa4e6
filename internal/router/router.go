package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fittrack/internal/auth"
	apperrors "fittrack/internal/errors"
	"fittrack/internal/handler"
	"fittrack/internal/middleware"
	"fittrack/internal/service"
	"fittrack/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userService service.UserService,
	authHandler *handler.AuthHandler,
	workoutHandler *handler.WorkoutHandler,
	mealHandler *handler.MealHandler,
) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	// The browser front-end is served from the same origin, but the API also
	// accepts cross-origin calls with credentials, mirroring any origin.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc:  func(origin string) (bool, error) { return true, nil },
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))

	e.Validator = validation.New()
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "OK"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/", "public")

	api := e.Group("/api")
	authn := middleware.Authenticate(jwtService, userService)

	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/profile", authHandler.Profile, authn...)

	workouts := api.Group("/workouts", authn...)
	workouts.GET("", workoutHandler.List)
	workouts.GET("/:id", workoutHandler.Get)
	workouts.POST("", workoutHandler.Create)
	workouts.PUT("/:id", workoutHandler.Update)
	workouts.DELETE("/:id", workoutHandler.Delete)

	meals := api.Group("/meals", authn...)
	meals.GET("", mealHandler.List)
	meals.GET("/:id", mealHandler.Get)
	meals.POST("", mealHandler.Create)
	meals.PUT("/:id", mealHandler.Update)
	meals.DELETE("/:id", mealHandler.Delete)
}

// httpErrorHandler renders every failure as {"message": ...}, with an
// "errors" array on validation failures. Unexpected errors are logged and
// collapse to a generic 500 so no internal detail reaches the client.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := echo.Map{"message": apperrors.Internal().Message}

	var appErr *apperrors.Error
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		body = echo.Map{"message": appErr.Message}
		if len(appErr.Details) > 0 {
			body["errors"] = appErr.Details
		}
	case errors.As(err, &echoErr):
		status = echoErr.Code
		body = echo.Map{"message": fmt.Sprintf("%v", echoErr.Message)}
	default:
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
