package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitgrid/gym-system/internal/api/metrics"
	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// GoogleCredentialVerifier validates a Google ID token and returns the
// identity it attests to.
type GoogleCredentialVerifier interface {
	Verify(credential string) (ports.ExternalIdentity, error)
}

// AuthHandler handles the /api/auth routes.
type AuthHandler struct {
	authService ports.AuthService
	google      GoogleCredentialVerifier
}

// NewAuthHandler creates an AuthHandler. google may be nil when Google
// sign-in is not configured.
func NewAuthHandler(authService ports.AuthService, google GoogleCredentialVerifier) *AuthHandler {
	return &AuthHandler{authService: authService, google: google}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type googleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// userResponse is the public projection of a user. The password hash is
// never serialized.
type userResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	AuthProvider   string `json:"auth_provider,omitempty"`
	IsActive       bool   `json:"is_active"`
	LastLogin      string `json:"last_login,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

type authResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token,omitempty"`
	User    *userResponse `json:"user,omitempty"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	resp := &userResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
		AuthProvider:   u.AuthProvider,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if u.LastLogin != nil {
		resp.LastLogin = u.LastLogin.UTC().Format("2006-01-02T15:04:05Z")
	}
	return resp
}

// Register creates a new member or coach account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Message: "User registered successfully",
		User:    toUserResponse(user),
	})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Google signs a user in with a verified Google credential, linking or
// creating the account as needed.
//
// @Summary      Google sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleLoginRequest  true  "Google ID token"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/auth/google [post]
func (h *AuthHandler) Google(c echo.Context) error {
	if h.google == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "google sign-in not configured")
	}

	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := h.google.Verify(req.Credential)
	if err != nil {
		return err
	}

	token, user, err := h.authService.LoginWithGoogle(c.Request().Context(), identity)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Google login successful",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Verify confirms the presented token still maps to an active account.
//
// @Summary      Verify token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Verify(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"valid": true,
		"user":  toUserResponse(user),
	})
}

// Logout revokes the presented token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "logout failed")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Profile returns the caller's account, freshly fetched.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"user": toUserResponse(user)})
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid"
	case errors.Is(err, domain.ErrAccountDeactivated):
		return "deactivated"
	}
	return "error"
}
