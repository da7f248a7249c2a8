package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	googleFn   func(ctx context.Context, identity ports.ExternalIdentity) (string, *domain.User, error)
	verifyFn   func(ctx context.Context, userID string) (*domain.User, error)
	profileFn  func(ctx context.Context, userID string) (*domain.User, error)
	logoutFn   func(ctx context.Context, claims ports.Claims) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) LoginWithGoogle(ctx context.Context, identity ports.ExternalIdentity) (string, *domain.User, error) {
	return s.googleFn(ctx, identity)
}

func (s *stubAuthService) Verify(ctx context.Context, userID string) (*domain.User, error) {
	return s.verifyFn(ctx, userID)
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubAuthService) Logout(ctx context.Context, claims ports.Claims) error {
	return s.logoutFn(ctx, claims)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Role != "member" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{
				ID:           "user_1",
				Name:         input.Name,
				Email:        input.Email,
				Role:         input.Role,
				PasswordHash: "$2a$10$secret",
				IsActive:     true,
			}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"pass","role":"member"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["role"] != "member" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub, nil)

	body := strings.NewReader(`{"name":"Bob","email":"bob@example.com","password":"pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{}, nil)

	body := strings.NewReader(`{"name":"NoEmail"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "user_1", Email: email, Role: "member", IsActive: true}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	body := strings.NewReader(`{"email":"carol@example.com","password":"pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("token missing from response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, nil)

	body := strings.NewReader(`{"email":"x@example.com","password":"bad"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Google_NotConfigured(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{}, nil)

	body := strings.NewReader(`{"credential":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/google", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Google(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when google is not configured, got %v", err)
	}
}

type stubVerifier struct {
	identity ports.ExternalIdentity
	err      error
}

func (s *stubVerifier) Verify(string) (ports.ExternalIdentity, error) {
	return s.identity, s.err
}

func TestAuthHandler_Google_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		googleFn: func(_ context.Context, identity ports.ExternalIdentity) (string, *domain.User, error) {
			if identity.GoogleID != "g-1" {
				t.Fatalf("identity not passed through: %+v", identity)
			}
			return "g-token", &domain.User{ID: "user_1", Email: identity.Email, Role: "member"}, nil
		},
	}
	verifier := &stubVerifier{identity: ports.ExternalIdentity{GoogleID: "g-1", Email: "g@example.com"}}
	h := NewAuthHandler(stub, verifier)

	body := strings.NewReader(`{"credential":"id-token"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/google", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Google(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "g-token") {
		t.Fatalf("token missing from response")
	}
}

func TestAuthHandler_Verify_RequiresClaims(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Verify(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	var got ports.Claims
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, claims ports.Claims) error {
			got = claims
			return nil
		},
	}
	h := NewAuthHandler(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")
	c.Set("role", "member")
	c.Set("token_id", "tok-9")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.TokenID != "tok-9" {
		t.Fatalf("token id not forwarded to service: %+v", got)
	}
}
