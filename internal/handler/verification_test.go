package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contact-info-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVerificationService is a mock implementation of the VerificationService interface
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Activate(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockVerificationService) ConfigureURL() string {
	return m.Called().String(0)
}

func (m *MockVerificationService) Codes(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	codes, _ := args.Get(0).(map[string]string)
	return codes, args.Error(1)
}

func (m *MockVerificationService) UpdateCodes(ctx context.Context, codes map[string]string) (map[string]string, error) {
	args := m.Called(ctx, codes)
	saved, _ := args.Get(0).(map[string]string)
	return saved, args.Error(1)
}

func TestVerificationHandler_Configure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockVerificationService)
	mockSvc.On("ConfigureURL").Return("/wp-admin/tools.php")

	router := NewRouter(NewContactInfoHandler(new(MockContactInfoService)), NewVerificationHandler(mockSvc))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/modules/verification-tools/configure", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/wp-admin/tools.php", w.Header().Get("Location"))
}

func TestVerificationHandler_Activate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		added          bool
		mockError      error
		expectedStatus int
	}{
		{name: "defaults set", added: true, expectedStatus: http.StatusOK},
		{name: "already configured", added: false, expectedStatus: http.StatusOK},
		{name: "service error", mockError: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockVerificationService)
			handler := NewVerificationHandler(mockSvc)
			mockSvc.On("Activate", mock.Anything).Return(tt.added, tt.mockError)

			c, w := newTestContext(http.MethodPost, "/modules/verification-tools/activate", nil, "")
			handler.Activate(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mockError == nil {
				var actualBody map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
				assert.Equal(t, tt.added, actualBody["defaults_set"])
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestVerificationHandler_UpdateCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockVerificationService)
	handler := NewVerificationHandler(mockSvc)

	mockSvc.On("UpdateCodes", mock.Anything, map[string]string{"google": "abc"}).Return(map[string]string{"google": "abc"}, nil)
	mockSvc.On("UpdateCodes", mock.Anything, map[string]string{"myspace": "x"}).
		Return(nil, fmt.Errorf("%w %q", service.ErrUnknownVerificationService, "myspace"))

	c, w := newTestContext(http.MethodPut, "/modules/verification-tools/codes", []byte(`{"google":"abc"}`), "")
	handler.UpdateCodes(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"google":"abc"}`, w.Body.String())

	c, w = newTestContext(http.MethodPut, "/modules/verification-tools/codes", []byte(`{"myspace":"x"}`), "")
	handler.UpdateCodes(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "unknown verification service"))

	mockSvc.AssertExpectations(t)
}

func TestRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := NewRouter(NewContactInfoHandler(new(MockContactInfoService)), NewVerificationHandler(new(MockVerificationService)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
