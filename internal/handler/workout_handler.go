package handler

import (
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/service"
)

// WorkoutHandler exposes CRUD for workout records.
type WorkoutHandler struct {
	workouts *service.ResourceService[model.Workout, *model.Workout]
}

// NewWorkoutHandler creates a new workout handler.
func NewWorkoutHandler(workouts *service.ResourceService[model.Workout, *model.Workout]) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// WorkoutRequest is the create/update payload. Duration is a pointer so a
// missing field is distinguishable from zero. UserID is only honored for
// admins; the service discards it otherwise.
type WorkoutRequest struct {
	Name     string     `json:"name" validate:"required,notblank"`
	Type     string     `json:"type" validate:"required,notblank"`
	Duration *float64   `json:"duration" validate:"required,gt=0"`
	UserID   *uuid.UUID `json:"userId"`
}

// RuleMessage implements validation.RuleMessager.
func (WorkoutRequest) RuleMessage(field, tag string) string {
	switch {
	case field == "Name":
		return "Name is required and must be a non-empty string"
	case field == "Type":
		return "Type is required and must be a non-empty string"
	case field == "Duration" && tag == "required":
		return "Duration is required"
	case field == "Duration":
		return "Duration must be a positive number"
	}
	return ""
}

// normalize trims the strings; duration is floored on read.
func (r *WorkoutRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Type = strings.TrimSpace(r.Type)
}

func (r *WorkoutRequest) durationMinutes() int {
	return int(math.Floor(*r.Duration))
}

// List godoc
// @Summary List workouts, newest first. Admins see every user's workouts.
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Workout
// @Failure 401 {object} errors.Error
// @Router /workouts [get]
func (h *WorkoutHandler) List(c echo.Context) error {
	workouts, err := h.workouts.List(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

// Get godoc
// @Summary Get one workout by id
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout id"
// @Success 200 {object} model.Workout
// @Failure 401 {object} errors.Error
// @Failure 403 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) Get(c echo.Context) error {
	id, err := parseID(c, "Workout")
	if err != nil {
		return err
	}
	workout, err := h.workouts.Get(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workout)
}

// Create godoc
// @Summary Create a workout owned by the caller
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WorkoutRequest true "Workout"
// @Success 201 {object} model.Workout
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /workouts [post]
func (h *WorkoutHandler) Create(c echo.Context) error {
	req, err := bindWorkout(c)
	if err != nil {
		return err
	}

	workout := &model.Workout{
		Name:     req.Name,
		Type:     req.Type,
		Duration: req.durationMinutes(),
	}
	if err := h.workouts.Create(c.Request().Context(), middleware.CurrentUser(c), workout, req.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, workout)
}

// Update godoc
// @Summary Replace a workout's fields
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout id"
// @Param request body WorkoutRequest true "Workout"
// @Success 200 {object} model.Workout
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Failure 403 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) Update(c echo.Context) error {
	id, err := parseID(c, "Workout")
	if err != nil {
		return err
	}
	req, err := bindWorkout(c)
	if err != nil {
		return err
	}

	workout, err := h.workouts.Update(c.Request().Context(), middleware.CurrentUser(c), id, req.UserID, func(w *model.Workout) {
		w.Name = req.Name
		w.Type = req.Type
		w.Duration = req.durationMinutes()
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workout)
}

// Delete godoc
// @Summary Delete a workout
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout id"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.Error
// @Failure 403 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "Workout")
	if err != nil {
		return err
	}
	if err := h.workouts.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Workout deleted"})
}

func bindWorkout(c echo.Context) (*WorkoutRequest, error) {
	var req WorkoutRequest
	if err := bindRequest(c, &req, req.normalize); err != nil {
		return nil, err
	}
	return &req, nil
}
