package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/service"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, email, name, password string) (*service.User, error) {
	args := m.Called(ctx, email, name, password)
	u, _ := args.Get(0).(*service.User)
	return u, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*service.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*service.User)
	return u, args.Error(1)
}

func (m *mockAuthService) RequestRecovery(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthService) VerifyRecoveryToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token, password string) error {
	return m.Called(ctx, token, password).Error(0)
}

func newTestAPI(t *testing.T, svc *mockAuthService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if userID != uuid.Nil {
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
		})
	}
	NewRegisterHandler(svc).Register(api)
	NewLoginHandler(svc).Register(api)
	NewLogoutHandler(svc).Register(api)
	NewMeHandler(svc).Register(api)
	NewRecoveryHandler(svc).Register(api)
	return api
}

func sampleUser() *service.User {
	return &service.User{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     "ada@example.com",
		Name:      "Ada",
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRegister(t *testing.T) {
	u := sampleUser()
	svc := new(mockAuthService)
	svc.On("Register", mock.Anything, "ada@example.com", "Ada", "correct horse").Return(u, nil)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/register", RegisterBody{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, u.ID.String(), body.ID)
	assert.Equal(t, "2025-03-01T09:00:00Z", body.CreatedAt)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrEmailTaken)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/register", RegisterBody{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := new(mockAuthService)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/register", RegisterBody{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "short",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Register")
}

func TestLogin(t *testing.T) {
	u := sampleUser()
	expires := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "ada@example.com", "correct horse").
		Return(&service.Session{Token: "tok", ExpiresAt: expires, User: u}, nil)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/login", LoginBody{Email: "ada@example.com", Password: "correct horse"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tok", body.Token)
	assert.Equal(t, "2025-03-02T09:00:00Z", body.ExpiresAt)
	assert.Equal(t, "Ada", body.User.Name)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrInvalidCredentials)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/login", LoginBody{Email: "ada@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogout(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Logout", mock.Anything, "tok").Return(nil)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/logout", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestLogout_NoToken(t *testing.T) {
	svc := new(mockAuthService)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/logout")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "Logout")
}

func TestMe(t *testing.T) {
	u := sampleUser()
	svc := new(mockAuthService)
	svc.On("CurrentUser", mock.Anything, u.ID).Return(u, nil)

	resp := newTestAPI(t, svc, u.ID).Get("/v1/auth/me")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "ada@example.com")
}

func TestMe_Unauthenticated(t *testing.T) {
	svc := new(mockAuthService)

	resp := newTestAPI(t, svc, uuid.Nil).Get("/v1/auth/me")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequestRecovery(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("RequestRecovery", mock.Anything, "ada@example.com").Return(nil)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/recovery", map[string]any{"email": "ada@example.com"})

	assert.Equal(t, http.StatusAccepted, resp.Code)
	svc.AssertExpectations(t)
}

func TestRequestRecovery_NotifierFailure(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("RequestRecovery", mock.Anything, mock.Anything).Return(errors.New("broker unreachable"))

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/recovery", map[string]any{"email": "ada@example.com"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestVerifyRecoveryToken_Invalid(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("VerifyRecoveryToken", mock.Anything, "stale").Return(service.ErrInvalidRecoveryToken)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/recovery/verify", map[string]any{"token": "stale"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestResetPassword(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("ResetPassword", mock.Anything, "tok", "new password").Return(nil)

	resp := newTestAPI(t, svc, uuid.Nil).Post("/v1/auth/recovery/reset", map[string]any{
		"token":    "tok",
		"password": "new password",
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}
