package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// AdminHandler exposes the user administration routes mounted under
// /api/admin.
type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=member coach admin"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member coach admin"`
}

// ListUsers returns every account, newest first.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]*userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, map[string]any{"users": out})
}

// CreateUser creates an account with any role, including admin.
//
// @Summary      Create user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    toUserResponse(user),
	})
}

// UpdateUserRole changes an account's role.
//
// @Summary      Update user role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/users/{id}/role [patch]
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Role updated successfully",
		"user":    toUserResponse(user),
	})
}

// ActivateUser re-enables a deactivated account.
//
// @Summary      Activate user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id}/activate [patch]
func (h *AdminHandler) ActivateUser(c echo.Context) error {
	user, err := h.userService.SetActive(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "User activated successfully",
		"user":    toUserResponse(user),
	})
}

// DeactivateUser disables an account. Admins cannot deactivate
// themselves.
//
// @Summary      Deactivate user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id}/deactivate [patch]
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if claims.UserID == c.Param("id") {
		return domain.ErrSelfAction
	}

	user, err := h.userService.SetActive(c.Request().Context(), c.Param("id"), false)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "User deactivated successfully",
		"user":    toUserResponse(user),
	})
}

// DeleteUser removes an account permanently. Admins cannot delete
// themselves.
//
// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if claims.UserID == c.Param("id") {
		return domain.ErrSelfAction
	}

	deleted, err := h.userService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
