package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitgrid/gym-system/internal/api/metrics"
	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// MemberHandler exposes the /api/members routes.
type MemberHandler struct {
	memberService ports.MemberService
}

func NewMemberHandler(memberService ports.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

type createMemberRequest struct {
	Name             string  `json:"name"            validate:"required"`
	Email            string  `json:"email"           validate:"required,email"`
	Phone            string  `json:"phone"           validate:"required"`
	MembershipType   string  `json:"membership_type" validate:"required"`
	Address          string  `json:"address"`
	EmergencyContact string  `json:"emergency_contact"`
	CoachID          string  `json:"coach_id"`
	CoachName        string  `json:"coach_name"`
	Age              int     `json:"age"`
	IsStudent        bool    `json:"is_student"`
	Password         string  `json:"password"`
}

// updateMemberRequest is a partial update. Pointer fields distinguish
// "clear this value" from "leave it alone".
type updateMemberRequest struct {
	Name             string     `json:"name"`
	Email            string     `json:"email" validate:"omitempty,email"`
	Phone            string     `json:"phone"`
	MembershipType   string     `json:"membership_type"`
	Status           string     `json:"status"`
	Address          *string    `json:"address"`
	EmergencyContact *string    `json:"emergency_contact"`
	ExpirationDate   *time.Time `json:"expiration_date"`
	CoachID          *string    `json:"coach_id"`
	CoachName        *string    `json:"coach_name"`
	Age              int        `json:"age"`
	IsTrial          bool       `json:"is_trial"`
	IsStudent        bool       `json:"is_student"`
	Password         string     `json:"password"`
}

// List returns all members.
//
// @Summary      List members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.memberService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"members": members})
}

// Get returns a single member by id.
//
// @Summary      Get member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Member ID"
// @Success      200  {object}  domain.Member
// @Failure      404  {object}  map[string]string
// @Router       /api/members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.memberService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Create registers a new membership. Expiration and status are derived from
// the plan.
//
// @Summary      Create member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMemberRequest  true  "Member details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /api/members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req createMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.memberService.Create(c.Request().Context(), ports.CreateMemberInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		MembershipType:   req.MembershipType,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		CoachID:          req.CoachID,
		CoachName:        req.CoachName,
		Age:              req.Age,
		IsStudent:        req.IsStudent,
		Password:         req.Password,
	})
	if err != nil {
		return err
	}

	metrics.MembersCreatedTotal.WithLabelValues(member.MembershipType).Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Member created successfully",
		"member":  member,
	})
}

// Update applies a partial update to a member.
//
// @Summary      Update member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Member ID"
// @Param        body  body      updateMemberRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /api/members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.memberService.Update(c.Request().Context(), c.Param("id"), ports.UpdateMemberInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		MembershipType:   req.MembershipType,
		Status:           req.Status,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		ExpirationDate:   req.ExpirationDate,
		CoachID:          req.CoachID,
		CoachName:        req.CoachName,
		Age:              req.Age,
		IsTrial:          req.IsTrial,
		IsStudent:        req.IsStudent,
		Password:         req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Member updated successfully",
		"member":  member,
	})
}

// Delete removes a member.
//
// @Summary      Delete member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Member ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	deleted, err := h.memberService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrMemberNotFound
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Member deleted successfully"})
}
