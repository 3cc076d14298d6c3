package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
	"github.com/zanzibar-explore/tours-backend/internal/service/contact"
)

// MockContactUseCase is a mock implementation of contact.ContactUseCase
type MockContactUseCase struct {
	mock.Mock
}

func (m *MockContactUseCase) Create(ctx context.Context, input contact.CreateContactInput) (*domain.Contact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactUseCase) List(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestContactHandler_create(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := createContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+255700000003",
		Subject: "Tour availability",
		Message: "Is the Safari Blue tour available in September?",
	}
	body, _ := json.Marshal(req)
	c.Request = httptest.NewRequest("POST", "/contact/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := contact.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	created := &domain.Contact{
		ID:      "5f2b8c1a-6d7e-4f8a-9b0c-1d2e3f4a5b6c",
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.ContactStatusNew,
	}

	mockService.On("Create", c.Request.Context(), input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.Contact
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, domain.ContactStatusNew, response.Status)

	mockService.AssertExpectations(t)
}

func TestContactHandler_create_ValidationError(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{"name":"Jane Doe","email":"nope","subject":"Hi","message":"Hello"}`)
	c.Request = httptest.NewRequest("POST", "/contact/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.Anything).Return(nil, domain.ErrValidation)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandler_list(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/contact/", nil)

	contacts := []domain.Contact{{Name: "Jane Doe", Status: domain.ContactStatusNew}}
	mockService.On("List", c.Request.Context()).Return(contacts, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Contact
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
}

func TestContactHandler_updateStatus(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := "5f2b8c1a-6d7e-4f8a-9b0c-1d2e3f4a5b6c"
	c.Params = gin.Params{{Key: "id", Value: id}}
	body := []byte(`{"status":"replied"}`)
	c.Request = httptest.NewRequest("PUT", "/contact/"+id+"/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("UpdateStatus", c.Request.Context(), id, "replied").Return(nil)

	handler.updateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Contact status updated successfully"}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestContactHandler_updateStatus_NotFound(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := "5f2b8c1a-6d7e-4f8a-9b0c-1d2e3f4a5b6c"
	c.Params = gin.Params{{Key: "id", Value: id}}
	body := []byte(`{"status":"closed"}`)
	c.Request = httptest.NewRequest("PUT", "/contact/"+id+"/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("UpdateStatus", c.Request.Context(), id, "closed").Return(domain.ErrNotFound)

	handler.updateStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
