package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ukydev/car-maintenance/internal/models"
)

// MockVehicleCollection is a mock implementation of db.VehicleCollection
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) FindVehicles(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	args := m.Called(ctx, id, vehicle)
	return args.Error(0)
}

// MockTaskCollection is a mock implementation of db.TaskCollection
type MockTaskCollection struct {
	mock.Mock
}

func (m *MockTaskCollection) InsertTask(ctx context.Context, task models.MaintenanceTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskCollection) FindTasks(ctx context.Context) ([]models.MaintenanceTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceTask), args.Error(1)
}

func (m *MockTaskCollection) FindTaskByID(ctx context.Context, id string) (*models.MaintenanceTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceTask), args.Error(1)
}

func (m *MockTaskCollection) UpdateTask(ctx context.Context, id string, task models.MaintenanceTask) error {
	args := m.Called(ctx, id, task)
	return args.Error(0)
}

func (m *MockTaskCollection) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsCollection is a mock implementation of db.SettingsCollection
type MockSettingsCollection struct {
	mock.Mock
}

func (m *MockSettingsCollection) LoadUserName(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsCollection) SaveUserName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockSettingsCollection) LoadSettings(ctx context.Context) (models.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Settings), args.Error(1)
}

func (m *MockSettingsCollection) SaveSettings(ctx context.Context, settings models.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockStateStore is a mock implementation of db.StateStore
type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) DeleteVehicleCascade(ctx context.Context, vehicleID string) (int64, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStateStore) ReplaceAll(ctx context.Context, userName string, vehicles []models.Vehicle, tasks []models.MaintenanceTask) error {
	args := m.Called(ctx, userName, vehicles, tasks)
	return args.Error(0)
}
