package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/models"
)

func intPtr(n int) *int                  { return &n }
func datePtr(d models.Date) *models.Date { return &d }

func TestTaskHandler_Create(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		mockTasks := new(MockTaskCollection)
		mockVehicles := new(MockVehicleCollection)
		mockVehicles.On("FindVehicleByID", mock.Anything, "v1").Return(&models.Vehicle{ID: "v1"}, nil)
		mockTasks.On("InsertTask", mock.Anything, mock.AnythingOfType("models.MaintenanceTask")).Return(nil)

		handler := NewTaskHandler(mockTasks, mockVehicles)
		handler.now = fixedNow

		body := []byte(`{"vehicleId":"v1","title":"Oil Change","dueDate":"2025-09-01","dueMileage":60000,"recurrenceMiles":5000}`)
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var task models.MaintenanceTask
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&task))
		assert.NotEmpty(t, task.ID)
		assert.False(t, task.Completed)
		mockTasks.AssertExpectations(t)
	})

	t.Run("vehicle does not exist", func(t *testing.T) {
		mockTasks := new(MockTaskCollection)
		mockVehicles := new(MockVehicleCollection)
		mockVehicles.On("FindVehicleByID", mock.Anything, "gone").Return(nil, db.ErrNotFound)

		handler := NewTaskHandler(mockTasks, mockVehicles)

		body := []byte(`{"vehicleId":"gone","title":"Oil Change"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockTasks.AssertNotCalled(t, "InsertTask", mock.Anything, mock.Anything)
	})

	t.Run("missing title", func(t *testing.T) {
		handler := NewTaskHandler(new(MockTaskCollection), new(MockVehicleCollection))

		body := []byte(`{"vehicleId":"v1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative due mileage", func(t *testing.T) {
		handler := NewTaskHandler(new(MockTaskCollection), new(MockVehicleCollection))

		body := []byte(`{"vehicleId":"v1","title":"Oil Change","dueMileage":-5}`)
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandler_Complete(t *testing.T) {
	t.Run("stamps completion date", func(t *testing.T) {
		existing := &models.MaintenanceTask{
			ID:        "t1",
			VehicleID: "v1",
			Title:     "Oil Change",
			DueDate:   datePtr(models.NewDate(2025, time.May, 1)),
		}
		mockTasks := new(MockTaskCollection)
		mockTasks.On("FindTaskByID", mock.Anything, "t1").Return(existing, nil)
		mockTasks.On("UpdateTask", mock.Anything, "t1", mock.MatchedBy(func(task models.MaintenanceTask) bool {
			return task.Completed && task.CompletedAt != nil
		})).Return(nil)

		handler := NewTaskHandler(mockTasks, new(MockVehicleCollection))
		handler.now = fixedNow

		req := httptest.NewRequest(http.MethodPost, "/api/tasks/t1/complete", nil)
		req.SetPathValue("id", "t1")
		w := httptest.NewRecorder()

		handler.Complete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp CompleteResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Task.Completed)
		assert.Equal(t, "2025-06-15", resp.Task.CompletedAt.String())
		assert.Nil(t, resp.Next)
		mockTasks.AssertExpectations(t)
	})

	t.Run("recurring task spawns follow-up", func(t *testing.T) {
		existing := &models.MaintenanceTask{
			ID:              "t1",
			VehicleID:       "v1",
			Title:           "Oil Change",
			DueMileage:      intPtr(60000),
			RecurrenceMiles: intPtr(5000),
		}
		mockTasks := new(MockTaskCollection)
		mockTasks.On("FindTaskByID", mock.Anything, "t1").Return(existing, nil)
		mockTasks.On("UpdateTask", mock.Anything, "t1", mock.AnythingOfType("models.MaintenanceTask")).Return(nil)
		mockTasks.On("InsertTask", mock.Anything, mock.MatchedBy(func(task models.MaintenanceTask) bool {
			return task.DueMileage != nil && *task.DueMileage == 65000 && task.DueDate == nil && !task.Completed
		})).Return(nil)

		handler := NewTaskHandler(mockTasks, new(MockVehicleCollection))
		handler.now = fixedNow

		req := httptest.NewRequest(http.MethodPost, "/api/tasks/t1/complete", nil)
		req.SetPathValue("id", "t1")
		w := httptest.NewRecorder()

		handler.Complete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp CompleteResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotNil(t, resp.Next)
		assert.Equal(t, 65000, *resp.Next.DueMileage)
		assert.Equal(t, "Oil Change", resp.Next.Title)
		mockTasks.AssertExpectations(t)
	})

	t.Run("already completed is a no-op", func(t *testing.T) {
		done := models.NewDate(2025, time.May, 10)
		existing := &models.MaintenanceTask{
			ID:          "t1",
			VehicleID:   "v1",
			Title:       "Oil Change",
			Completed:   true,
			CompletedAt: &done,
		}
		mockTasks := new(MockTaskCollection)
		mockTasks.On("FindTaskByID", mock.Anything, "t1").Return(existing, nil)

		handler := NewTaskHandler(mockTasks, new(MockVehicleCollection))
		handler.now = fixedNow

		req := httptest.NewRequest(http.MethodPost, "/api/tasks/t1/complete", nil)
		req.SetPathValue("id", "t1")
		w := httptest.NewRecorder()

		handler.Complete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockTasks.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing task", func(t *testing.T) {
		mockTasks := new(MockTaskCollection)
		mockTasks.On("FindTaskByID", mock.Anything, "gone").Return(nil, db.ErrNotFound)

		handler := NewTaskHandler(mockTasks, new(MockVehicleCollection))

		req := httptest.NewRequest(http.MethodPost, "/api/tasks/gone/complete", nil)
		req.SetPathValue("id", "gone")
		w := httptest.NewRecorder()

		handler.Complete(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	mockTasks := new(MockTaskCollection)
	mockTasks.On("DeleteTask", mock.Anything, "gone").Return(db.ErrNotFound)

	handler := NewTaskHandler(mockTasks, new(MockVehicleCollection))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/gone", nil)
	req.SetPathValue("id", "gone")
	w := httptest.NewRecorder()

	handler.Delete(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_Upcoming(t *testing.T) {
	mockTasks := new(MockTaskCollection)
	mockTasks.On("FindTasks", mock.Anything).Return([]models.MaintenanceTask{
		{ID: "overdue-date", VehicleID: "v1", Title: "Oil Change", DueDate: datePtr(models.NewDate(2025, time.January, 1))},
		{ID: "overdue-miles", VehicleID: "v1", Title: "Tire Rotation", DueMileage: intPtr(40000)},
		{ID: "future", VehicleID: "v1", Title: "Coolant Flush", DueDate: datePtr(models.NewDate(2099, time.January, 1)), DueMileage: intPtr(99999)},
		{ID: "done", VehicleID: "v1", Title: "Brake Inspection", DueDate: datePtr(models.NewDate(2025, time.January, 1)), Completed: true},
	}, nil)
	mockVehicles := new(MockVehicleCollection)
	mockVehicles.On("FindVehicles", mock.Anything).Return([]models.Vehicle{{ID: "v1", Mileage: 50000}}, nil)

	handler := NewTaskHandler(mockTasks, mockVehicles)
	handler.now = fixedNow

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/upcoming", nil)
	w := httptest.NewRecorder()

	handler.Upcoming(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var upcoming []models.MaintenanceTask
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&upcoming))
	assert.Len(t, upcoming, 2)
	assert.Equal(t, "overdue-date", upcoming[0].ID)
	assert.Equal(t, "overdue-miles", upcoming[1].ID)
}
