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

// MealHandler exposes CRUD for meal records.
type MealHandler struct {
	meals *service.ResourceService[model.Meal, *model.Meal]
}

// NewMealHandler creates a new meal handler.
func NewMealHandler(meals *service.ResourceService[model.Meal, *model.Meal]) *MealHandler {
	return &MealHandler{meals: meals}
}

// MealRequest is the create/update payload. Macro fields are pointers so a
// missing field is distinguishable from zero.
type MealRequest struct {
	Name     string     `json:"name" validate:"required,notblank"`
	Calories *float64   `json:"calories" validate:"required,gte=0"`
	Protein  *float64   `json:"protein" validate:"required,gte=0"`
	Fat      *float64   `json:"fat" validate:"required,gte=0"`
	Carbs    *float64   `json:"carbs" validate:"required,gte=0"`
	UserID   *uuid.UUID `json:"userId"`
}

// RuleMessage implements validation.RuleMessager.
func (MealRequest) RuleMessage(field, tag string) string {
	if field == "Name" {
		return "Name is required and must be a non-empty string"
	}
	if tag == "required" {
		return field + " is required"
	}
	return field + " must be a non-negative number"
}

func (r *MealRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// macro floors a validated quantity, clamping at zero as a backstop.
func macro(v *float64) int {
	return int(math.Max(0, math.Floor(*v)))
}

// List godoc
// @Summary List meals, newest first. Admins see every user's meals.
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Meal
// @Failure 401 {object} errors.Error
// @Router /meals [get]
func (h *MealHandler) List(c echo.Context) error {
	meals, err := h.meals.List(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meals)
}

// Get godoc
// @Summary Get one meal by id
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal id"
// @Success 200 {object} model.Meal
// @Failure 401 {object} errors.Error
// @Failure 403 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /meals/{id} [get]
func (h *MealHandler) Get(c echo.Context) error {
	id, err := parseID(c, "Meal")
	if err != nil {
		return err
	}
	meal, err := h.meals.Get(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meal)
}

// Create godoc
// @Summary Create a meal owned by the caller
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MealRequest true "Meal"
// @Success 201 {object} model.Meal
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /meals [post]
func (h *MealHandler) Create(c echo.Context) error {
	req, err := bindMeal(c)
	if err != nil {
		return err
	}

	meal := &model.Meal{
		Name:     req.Name,
		Calories: macro(req.Calories),
		Protein:  macro(req.Protein),
		Fat:      macro(req.Fat),
		Carbs:    macro(req.Carbs),
	}
	if err := h.meals.Create(c.Request().Context(), middleware.CurrentUser(c), meal, req.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, meal)
}

// Update godoc
// @Summary Replace a meal's fields
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal id"
// @Param request body MealRequest true "Meal"
// @Success 200 {object} model.Meal
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Failure 403 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /meals/{id} [put]
func (h *MealHandler) Update(c echo.Context) error {
	id, err := parseID(c, "Meal")
	if err != nil {
		return err
	}
	req, err := bindMeal(c)
	if err != nil {
		return err
	}

	meal, err := h.meals.Update(c.Request().Context(), middleware.CurrentUser(c), id, req.UserID, func(m *model.Meal) {
		m.Name = req.Name
		m.Calories = macro(req.Calories)
		m.Protein = macro(req.Protein)
		m.Fat = macro(req.Fat)
		m.Carbs = macro(req.Carbs)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meal)
}

// Delete godoc
// @Summary Delete a meal
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal id"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.Error
// @Failure 403 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /meals/{id} [delete]
func (h *MealHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "Meal")
	if err != nil {
		return err
	}
	if err := h.meals.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Meal deleted"})
}

func bindMeal(c echo.Context) (*MealRequest, error) {
	var req MealRequest
	if err := bindRequest(c, &req, req.normalize); err != nil {
		return nil, err
	}
	return &req, nil
}
