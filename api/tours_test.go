package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
	"github.com/zanzibar-explore/tours-backend/internal/service/tours"
)

// MockTourUseCase is a mock implementation of tours.TourUseCase
type MockTourUseCase struct {
	mock.Mock
}

func (m *MockTourUseCase) List(ctx context.Context) ([]domain.Tour, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourUseCase) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockTourUseCase) ListByCategory(ctx context.Context, category string) ([]domain.Tour, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourUseCase) CreateBooking(ctx context.Context, input tours.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockTourUseCase) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestTourHandler_list(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tours/", nil)

	expected := []domain.Tour{
		{ID: "a1b2c3d4-0000-4000-8000-000000000001", Title: "Safari Blue", Category: domain.TourCategoryWater},
	}
	mockService.On("List", c.Request.Context()).Return(expected, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Tour
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "Safari Blue", response[0].Title)

	mockService.AssertExpectations(t)
}

func TestTourHandler_get_NotFound(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := "a1b2c3d4-0000-4000-8000-00000000ffff"
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest("GET", "/tours/"+id, nil)

	mockService.On("GetByID", c.Request.Context(), id).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestTourHandler_get_InvalidID(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	c.Request = httptest.NewRequest("GET", "/tours/not-a-uuid", nil)

	mockService.On("GetByID", c.Request.Context(), "not-a-uuid").Return(nil, domain.ErrInvalidID)

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTourHandler_listByCategory(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "category", Value: "cultural"}}
	c.Request = httptest.NewRequest("GET", "/tours/category/cultural", nil)

	mockService.On("ListByCategory", c.Request.Context(), "cultural").Return([]domain.Tour{}, nil)

	handler.listByCategory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestTourHandler_createBooking(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := createBookingRequest{
		TourID:       "a1b2c3d4-0000-4000-8000-000000000001",
		CustomerName: "John Smith",
		Email:        "john@example.com",
		Phone:        "+255700000001",
		BookingDate:  "2025-08-15",
		Guests:       2,
	}
	body, _ := json.Marshal(req)
	c.Request = httptest.NewRequest("POST", "/tours/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := tours.CreateBookingInput{
		TourID:       req.TourID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		BookingDate:  time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		Guests:       2,
	}

	booking := &domain.Booking{
		ID:           "b1b2c3d4-0000-4000-8000-000000000001",
		TourID:       req.TourID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		BookingDate:  input.BookingDate,
		Guests:       2,
		Status:       domain.BookingStatusPending,
	}

	mockService.On("CreateBooking", c.Request.Context(), input).Return(booking, nil)

	handler.createBooking(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "2025-08-15", response.BookingDate)
	assert.Equal(t, string(domain.BookingStatusPending), response.Status)

	mockService.AssertExpectations(t)
}

func TestTourHandler_createBooking_BadDate(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{"tour_id":"a1b2c3d4-0000-4000-8000-000000000001","customer_name":"John Smith","email":"john@example.com","booking_date":"15/08/2025","guests":2}`)
	c.Request = httptest.NewRequest("POST", "/tours/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.createBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestTourHandler_createBooking_ValidationError(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{"tour_id":"a1b2c3d4-0000-4000-8000-000000000001","customer_name":"","email":"john@example.com","booking_date":"2025-08-15","guests":2}`)
	c.Request = httptest.NewRequest("POST", "/tours/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateBooking", c.Request.Context(), mock.Anything).Return(nil, domain.ErrValidation)

	handler.createBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTourHandler_getBooking(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := "b1b2c3d4-0000-4000-8000-000000000001"
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest("GET", "/tours/bookings/"+id, nil)

	booking := &domain.Booking{
		ID:          id,
		TourID:      "a1b2c3d4-0000-4000-8000-000000000001",
		BookingDate: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		Status:      domain.BookingStatusConfirmed,
	}

	mockService.On("GetBooking", c.Request.Context(), id).Return(booking, nil)

	handler.getBooking(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, id, response.ID)
	assert.Equal(t, string(domain.BookingStatusConfirmed), response.Status)

	mockService.AssertExpectations(t)
}
