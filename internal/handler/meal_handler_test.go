package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/service"
)

// MockMealStore is a mock implementation of the meal store.
type MockMealStore struct {
	mock.Mock
}

func (m *MockMealStore) List(ctx context.Context, owner *uuid.UUID) ([]model.Meal, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meal), args.Error(1)
}

func (m *MockMealStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealStore) Create(ctx context.Context, rec *model.Meal) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockMealStore) Save(ctx context.Context, rec *model.Meal) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockMealStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newMealHandler(store *MockMealStore) *MealHandler {
	return NewMealHandler(service.NewResourceService[model.Meal, *model.Meal](store, "Meal"))
}

func TestMealHandler_Create_FloorsMacros(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}

	store := new(MockMealStore)
	store.On("Create", mock.Anything, mock.AnythingOfType("*model.Meal")).Return(nil)

	body := `{"name":"Lunch","calories":450.9,"protein":30.2,"fat":0.4,"carbs":0}`
	c, rec := newTestContext(http.MethodPost, "/api/meals", body, caller)
	assert.NoError(t, newMealHandler(store).Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.Meal
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Lunch", created.Name)
	assert.Equal(t, 450, created.Calories)
	assert.Equal(t, 30, created.Protein)
	assert.Equal(t, 0, created.Fat)
	assert.Equal(t, 0, created.Carbs)
	assert.Equal(t, caller.ID, created.UserID)
	store.AssertExpectations(t)
}

func TestMealHandler_Create_AggregatesValidationErrors(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}
	store := new(MockMealStore)

	c, _ := newTestContext(http.MethodPost, "/api/meals", `{"calories":-10,"fat":2}`, caller)
	err := newMealHandler(store).Create(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, "Validation failed", appErr.Message)
		assert.Equal(t, []string{
			"Name is required and must be a non-empty string",
			"Calories must be a non-negative number",
			"Protein is required",
			"Carbs is required",
		}, appErr.Details)
	}
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMealHandler_Create_WrongTypedMacroAggregates(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}
	store := new(MockMealStore)

	c, _ := newTestContext(http.MethodPost, "/api/meals", `{"name":"Lunch","calories":"lots","fat":10,"carbs":50}`, caller)
	err := newMealHandler(store).Create(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, "Validation failed", appErr.Message)
		assert.Equal(t, []string{
			"Calories must be a non-negative number",
			"Protein is required",
		}, appErr.Details)
	}
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMealHandler_Delete_Forbidden(t *testing.T) {
	ownerID := uuid.New()
	recordID := uuid.New()

	store := new(MockMealStore)
	store.On("FindByID", mock.Anything, recordID).
		Return(&model.Meal{ID: recordID, UserID: ownerID}, nil)

	c, _ := newTestContext(http.MethodDelete, "/api/meals/"+recordID.String(), "", &model.User{ID: uuid.New(), Role: model.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues(recordID.String())

	err := newMealHandler(store).Delete(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusForbidden, appErr.Status)
		assert.Equal(t, "Forbidden: You can only delete your own meals", appErr.Message)
	}
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMealHandler_Delete(t *testing.T) {
	ownerID := uuid.New()
	recordID := uuid.New()

	store := new(MockMealStore)
	store.On("FindByID", mock.Anything, recordID).
		Return(&model.Meal{ID: recordID, UserID: ownerID}, nil)
	store.On("Delete", mock.Anything, recordID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/api/meals/"+recordID.String(), "", &model.User{ID: ownerID, Role: model.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues(recordID.String())

	assert.NoError(t, newMealHandler(store).Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Meal deleted")
	store.AssertExpectations(t)
}

func TestMealHandler_Update_ReplacesAllFields(t *testing.T) {
	ownerID := uuid.New()
	recordID := uuid.New()
	caller := &model.User{ID: ownerID, Role: model.RoleUser}

	store := new(MockMealStore)
	store.On("FindByID", mock.Anything, recordID).
		Return(&model.Meal{ID: recordID, UserID: ownerID, Name: "Lunch", Calories: 450, Protein: 30, Fat: 10, Carbs: 50}, nil)
	store.On("Save", mock.Anything, mock.AnythingOfType("*model.Meal")).Return(nil)

	body := `{"name":"Dinner","calories":600,"protein":40,"fat":15,"carbs":60}`
	c, rec := newTestContext(http.MethodPut, "/api/meals/"+recordID.String(), body, caller)
	c.SetParamNames("id")
	c.SetParamValues(recordID.String())

	assert.NoError(t, newMealHandler(store).Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated model.Meal
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Dinner", updated.Name)
	assert.Equal(t, 600, updated.Calories)
	assert.Equal(t, 40, updated.Protein)
	assert.Equal(t, 15, updated.Fat)
	assert.Equal(t, 60, updated.Carbs)
	assert.Equal(t, ownerID, updated.UserID)
	store.AssertExpectations(t)
}

func TestMealHandler_Create_RejectsMalformedBody(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}
	store := new(MockMealStore)

	c, _ := newTestContext(http.MethodPost, "/api/meals", `{"name":`, caller)
	err := newMealHandler(store).Create(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, []string{"Request body must be valid JSON"}, appErr.Details)
	}
}
