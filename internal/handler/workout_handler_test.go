package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "fittrack/internal/errors"
	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/internal/validation"
)

// MockWorkoutStore is a mock implementation of the workout store.
type MockWorkoutStore struct {
	mock.Mock
}

func (m *MockWorkoutStore) List(ctx context.Context, owner *uuid.UUID) ([]model.Workout, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Workout), args.Error(1)
}

func (m *MockWorkoutStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutStore) Create(ctx context.Context, rec *model.Workout) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockWorkoutStore) Save(ctx context.Context, rec *model.Workout) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockWorkoutStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestContext(method, path, body string, caller *model.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		c.Set(middleware.ContextUserKey, caller)
	}
	return c, rec
}

func newWorkoutHandler(store *MockWorkoutStore) *WorkoutHandler {
	return NewWorkoutHandler(service.NewResourceService[model.Workout, *model.Workout](store, "Workout"))
}

func TestWorkoutHandler_Create_FloorsDuration(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}

	store := new(MockWorkoutStore)
	store.On("Create", mock.Anything, mock.AnythingOfType("*model.Workout")).Return(nil)

	c, rec := newTestContext(http.MethodPost, "/api/workouts", `{"name":"Run","type":"cardio","duration":30.7}`, caller)
	assert.NoError(t, newWorkoutHandler(store).Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.Workout
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Run", created.Name)
	assert.Equal(t, "cardio", created.Type)
	assert.Equal(t, 30, created.Duration)
	assert.Equal(t, caller.ID, created.UserID)
	store.AssertExpectations(t)
}

func TestWorkoutHandler_Create_TrimsStrings(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}

	store := new(MockWorkoutStore)
	store.On("Create", mock.Anything, mock.AnythingOfType("*model.Workout")).Return(nil)

	c, rec := newTestContext(http.MethodPost, "/api/workouts", `{"name":"  Run ","type":" cardio ","duration":30}`, caller)
	assert.NoError(t, newWorkoutHandler(store).Create(c))

	var created model.Workout
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Run", created.Name)
	assert.Equal(t, "cardio", created.Type)
	assert.Equal(t, 30, created.Duration)
}

func TestWorkoutHandler_Create_AggregatesValidationErrors(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}
	store := new(MockWorkoutStore)

	c, _ := newTestContext(http.MethodPost, "/api/workouts", `{"name":"  ","duration":-5}`, caller)
	err := newWorkoutHandler(store).Create(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, "Validation failed", appErr.Message)
		assert.Equal(t, []string{
			"Name is required and must be a non-empty string",
			"Type is required and must be a non-empty string",
			"Duration must be a positive number",
		}, appErr.Details)
	}
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkoutHandler_Create_WrongTypedDurationNamesItsRule(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}
	store := new(MockWorkoutStore)

	c, _ := newTestContext(http.MethodPost, "/api/workouts", `{"name":"Run","type":"cardio","duration":"thirty"}`, caller)
	err := newWorkoutHandler(store).Create(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, "Validation failed", appErr.Message)
		assert.Equal(t, []string{"Duration must be a positive number"}, appErr.Details)
	}
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkoutHandler_Create_WrongTypedFieldAggregates(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}
	store := new(MockWorkoutStore)

	c, _ := newTestContext(http.MethodPost, "/api/workouts", `{"name":"  ","type":"cardio","duration":"thirty"}`, caller)
	err := newWorkoutHandler(store).Create(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, []string{
			"Name is required and must be a non-empty string",
			"Duration must be a positive number",
		}, appErr.Details)
	}
}

func TestWorkoutHandler_Update_StripsOwnerForNonAdmin(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	recordID := uuid.New()
	caller := &model.User{ID: ownerID, Role: model.RoleUser}

	store := new(MockWorkoutStore)
	store.On("FindByID", mock.Anything, recordID).
		Return(&model.Workout{ID: recordID, UserID: ownerID, Name: "Run", Type: "cardio", Duration: 30}, nil)
	store.On("Save", mock.Anything, mock.AnythingOfType("*model.Workout")).Return(nil)

	body := `{"name":"Swim","type":"cardio","duration":45,"userId":"` + otherID.String() + `"}`
	c, rec := newTestContext(http.MethodPut, "/api/workouts/"+recordID.String(), body, caller)
	c.SetParamNames("id")
	c.SetParamValues(recordID.String())

	assert.NoError(t, newWorkoutHandler(store).Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated model.Workout
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Swim", updated.Name)
	assert.Equal(t, 45, updated.Duration)
	// the requested owner change was discarded, not rejected
	assert.Equal(t, ownerID, updated.UserID)
	store.AssertExpectations(t)
}

func TestWorkoutHandler_Get_UnknownIDIs404(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}
	recordID := uuid.New()

	store := new(MockWorkoutStore)
	store.On("FindByID", mock.Anything, recordID).Return(nil, gorm.ErrRecordNotFound)

	c, _ := newTestContext(http.MethodGet, "/api/workouts/"+recordID.String(), "", caller)
	c.SetParamNames("id")
	c.SetParamValues(recordID.String())

	err := newWorkoutHandler(store).Get(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "Workout not found", appErr.Message)
	}
}

func TestWorkoutHandler_Get_MalformedIDIs404(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Role: model.RoleUser}
	store := new(MockWorkoutStore)

	c, _ := newTestContext(http.MethodGet, "/api/workouts/not-a-uuid", "", caller)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := newWorkoutHandler(store).Get(c)

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	}
	store.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestWorkoutHandler_List_ScopesByRole(t *testing.T) {
	callerID := uuid.New()

	t.Run("non-admin sees only their records", func(t *testing.T) {
		store := new(MockWorkoutStore)
		store.On("List", mock.Anything, mock.MatchedBy(func(owner *uuid.UUID) bool {
			return owner != nil && *owner == callerID
		})).Return([]model.Workout{}, nil)

		c, rec := newTestContext(http.MethodGet, "/api/workouts", "", &model.User{ID: callerID, Role: model.RoleUser})
		assert.NoError(t, newWorkoutHandler(store).List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
		store.AssertExpectations(t)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		store := new(MockWorkoutStore)
		store.On("List", mock.Anything, (*uuid.UUID)(nil)).Return([]model.Workout{}, nil)

		c, _ := newTestContext(http.MethodGet, "/api/workouts", "", &model.User{ID: callerID, Role: model.RoleAdmin})
		assert.NoError(t, newWorkoutHandler(store).List(c))
		store.AssertExpectations(t)
	})
}

func TestWorkoutHandler_Delete(t *testing.T) {
	ownerID := uuid.New()
	recordID := uuid.New()

	store := new(MockWorkoutStore)
	store.On("FindByID", mock.Anything, recordID).
		Return(&model.Workout{ID: recordID, UserID: ownerID}, nil)
	store.On("Delete", mock.Anything, recordID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/api/workouts/"+recordID.String(), "", &model.User{ID: ownerID, Role: model.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues(recordID.String())

	assert.NoError(t, newWorkoutHandler(store).Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Workout deleted")
	store.AssertExpectations(t)
}
