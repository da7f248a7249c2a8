package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// CoachHandler exposes the /api/coaches routes.
type CoachHandler struct {
	coachService ports.CoachService
}

func NewCoachHandler(coachService ports.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

type createCoachRequest struct {
	Name           string  `json:"name"  validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required"`
	Specialization string  `json:"specialization"`
	Experience     int     `json:"experience"`
	Salary         float64 `json:"salary"`
	Password       string  `json:"password"`
}

type updateCoachRequest struct {
	Name           string  `json:"name"  validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required"`
	Specialization string  `json:"specialization"`
	Experience     int     `json:"experience"`
	Status         string  `json:"status"`
	Salary         float64 `json:"salary"`
}

// List returns all coaches.
//
// @Summary      List coaches
// @Tags         coaches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/coaches [get]
func (h *CoachHandler) List(c echo.Context) error {
	coaches, err := h.coachService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"coaches": coaches})
}

// Get returns a single coach by id.
//
// @Summary      Get coach
// @Tags         coaches
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Coach ID"
// @Success      200  {object}  domain.Coach
// @Failure      404  {object}  map[string]string
// @Router       /api/coaches/{id} [get]
func (h *CoachHandler) Get(c echo.Context) error {
	coach, err := h.coachService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coach)
}

// Create adds a coach. A password also provisions a coach login.
//
// @Summary      Create coach
// @Tags         coaches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCoachRequest  true  "Coach details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /api/coaches [post]
func (h *CoachHandler) Create(c echo.Context) error {
	var req createCoachRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coach, err := h.coachService.Create(c.Request().Context(), ports.CreateCoachInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Salary:         req.Salary,
		Password:       req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Coach created successfully",
		"coach":   coach,
	})
}

// Update replaces a coach's mutable fields.
//
// @Summary      Update coach
// @Tags         coaches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Coach ID"
// @Param        body  body      updateCoachRequest  true  "Coach details"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /api/coaches/{id} [put]
func (h *CoachHandler) Update(c echo.Context) error {
	var req updateCoachRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coach, err := h.coachService.Update(c.Request().Context(), c.Param("id"), ports.UpdateCoachInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Status:         req.Status,
		Salary:         req.Salary,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Coach updated successfully",
		"coach":   coach,
	})
}

// Delete removes a coach.
//
// @Summary      Delete coach
// @Tags         coaches
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Coach ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/coaches/{id} [delete]
func (h *CoachHandler) Delete(c echo.Context) error {
	deleted, err := h.coachService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrCoachNotFound
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Coach deleted successfully"})
}
