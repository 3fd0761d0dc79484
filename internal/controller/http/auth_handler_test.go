package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mld-backend/internal/entity"
	"mld-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(username, password, firstName, lastName, email string) (*entity.User, string, error) {
	args := m.Called(username, password, firstName, lastName, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(username, password string) (*entity.User, string, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Setup(username, password, firstName, lastName, email string) (*entity.User, error) {
	args := m.Called(username, password, firstName, lastName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) ResolveRole(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(userID, firstName, lastName, email, phoneNumber string) (*entity.User, error) {
	args := m.Called(userID, firstName, lastName, email, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupAuthRouter(uc usecase.AuthUseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/setup", h.Setup)
	r.GET("/api/auth/me", asUser(userID, entity.RoleUser, h.Me))
	r.PUT("/api/auth/profile", asUser(userID, entity.RoleUser, h.UpdateProfile))
	return r
}

func registerBody() []byte {
	body, _ := json.Marshal(RegisterRequest{
		Username:  "dana",
		Password:  "secret123",
		FirstName: "Dana",
		LastName:  "Hall",
		Email:     "dana@example.com",
	})
	return body
}

func TestRegisterEndpoint(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Register", "dana", "secret123", "Dana", "Hall", "dana@example.com").
		Return(&entity.User{ID: "u1", Username: "dana", Role: entity.RoleUser}, "signed-token", nil)

	r := setupAuthRouter(uc, "")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewReader(registerBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "dana", resp.User.Username)
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Register", "dana", "secret123", "Dana", "Hall", "dana@example.com").
		Return(nil, "", fmt.Errorf("%w: username or email already exists", usecase.ErrValidation))

	r := setupAuthRouter(uc, "")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewReader(registerBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterEndpoint_ShortPassword(t *testing.T) {
	uc := new(MockAuthUseCase)

	r := setupAuthRouter(uc, "")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register",
		strings.NewReader(`{"username":"dana","password":"abc","firstName":"Dana","lastName":"Hall","email":"dana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Login", "dana", "wrong").
		Return(nil, "", fmt.Errorf("%w: invalid credentials", usecase.ErrUnauthenticated))

	r := setupAuthRouter(uc, "")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"dana","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestSetupEndpoint_AdminAlreadyExists(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Setup", "dana", "secret123", "Dana", "Hall", "dana@example.com").
		Return(nil, fmt.Errorf("%w: admin user already exists", usecase.ErrValidation))

	r := setupAuthRouter(uc, "")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/setup", bytes.NewReader(registerBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "admin user already exists")
}

func TestMeEndpoint(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("GetUser", "u1").Return(&entity.User{ID: "u1", Username: "dana"}, nil)

	r := setupAuthRouter(uc, "u1")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got entity.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "dana", got.Username)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("UpdateProfile", "u1", "Dana", "Hall", "new@example.com", "555-0101").
		Return(&entity.User{ID: "u1", Email: "new@example.com", PhoneNumber: "555-0101"}, nil)

	r := setupAuthRouter(uc, "u1")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/auth/profile",
		strings.NewReader(`{"firstName":"Dana","lastName":"Hall","email":"new@example.com","phoneNumber":"555-0101"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}
