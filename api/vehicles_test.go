package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/autohub/fleetrental/internal/service/fleet"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFleetUseCase is a mock implementation of fleet.FleetUseCase
type MockFleetUseCase struct {
	mock.Mock
}

func (m *MockFleetUseCase) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockFleetUseCase) Add(ctx context.Context, input fleet.AddVehicleInput) (*domain.Vehicle, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockFleetUseCase) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFleetUseCase) EnsureDefaultFleet(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestVehicleHandler_list(t *testing.T) {
	mockService := &MockFleetUseCase{}
	handler := NewVehicleHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/vehicles", nil)

	vehicles := []domain.Vehicle{
		{ID: "veh-1", Model: "Tesla Model S Plaid", Category: "Electric Sedan", PricePerDay: 15000},
	}

	mockService.On("List", c.Request.Context()).Return(vehicles, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestVehicleHandler_add(t *testing.T) {
	mockService := &MockFleetUseCase{}
	handler := NewVehicleHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]any{
		"model":       "Audi RS7",
		"type":        "Sports Sedan",
		"pricePerDay": 20000,
	})
	c.Request = httptest.NewRequest("POST", "/api/vehicles", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Vehicle{
		ID:           "veh-2",
		Model:        "Audi RS7",
		Category:     "Sports Sedan",
		PricePerDay:  20000,
		Availability: domain.AvailabilityAvailable,
	}

	mockService.On("Add", c.Request.Context(), fleet.AddVehicleInput{
		Model:       "Audi RS7",
		Category:    "Sports Sedan",
		PricePerDay: 20000,
	}).Return(created, nil)

	handler.add(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestVehicleHandler_add_MissingModel(t *testing.T) {
	mockService := &MockFleetUseCase{}
	handler := NewVehicleHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]any{"pricePerDay": 20000})
	c.Request = httptest.NewRequest("POST", "/api/vehicles", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.add(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Add")
}

func TestVehicleHandler_remove(t *testing.T) {
	testCases := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"Removed", nil, http.StatusOK},
		{"Active booking conflict", fleet.ErrVehicleHasActiveBooking, http.StatusConflict},
		{"Unknown vehicle", fleet.ErrVehicleNotFound, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockFleetUseCase{}
			handler := NewVehicleHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			c.Params = gin.Params{{Key: "id", Value: "veh-1"}}
			c.Request = httptest.NewRequest("DELETE", "/api/vehicles/veh-1", nil)

			mockService.On("Remove", c.Request.Context(), "veh-1").Return(tc.serviceErr)

			handler.remove(c)

			assert.Equal(t, tc.expectedCode, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
