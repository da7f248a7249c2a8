package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// ScheduleHandler exposes the /api/schedules routes.
type ScheduleHandler struct {
	scheduleService ports.ScheduleService
}

func NewScheduleHandler(scheduleService ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

type scheduleRequest struct {
	ClassName string `json:"class_name" validate:"required"`
	CoachID   string `json:"coach_id"   validate:"required"`
	Day       string `json:"day"        validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
	Capacity  int    `json:"capacity"`
}

// List returns all schedules with coach details resolved.
//
// @Summary      List schedules
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/schedules [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	schedules, err := h.scheduleService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"schedules": schedules})
}

// Get returns a single schedule by id.
//
// @Summary      Get schedule
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Schedule ID"
// @Success      200  {object}  domain.Schedule
// @Failure      404  {object}  map[string]string
// @Router       /api/schedules/{id} [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	schedule, err := h.scheduleService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedule)
}

// Create adds a class schedule.
//
// @Summary      Create schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scheduleRequest  true  "Schedule details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /api/schedules [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule, err := h.scheduleService.Create(c.Request().Context(), ports.ScheduleInput{
		ClassName: req.ClassName,
		CoachID:   req.CoachID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  req.Capacity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "Schedule created successfully",
		"schedule": schedule,
	})
}

// Update replaces a schedule's fields. A zero capacity keeps the stored one.
//
// @Summary      Update schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Schedule ID"
// @Param        body  body      scheduleRequest  true  "Schedule details"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /api/schedules/{id} [put]
func (h *ScheduleHandler) Update(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule, err := h.scheduleService.Update(c.Request().Context(), c.Param("id"), ports.ScheduleInput{
		ClassName: req.ClassName,
		CoachID:   req.CoachID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  req.Capacity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":  "Schedule updated successfully",
		"schedule": schedule,
	})
}

// Delete removes a schedule.
//
// @Summary      Delete schedule
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Schedule ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c echo.Context) error {
	deleted, err := h.scheduleService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrScheduleNotFound
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Schedule deleted successfully"})
}
