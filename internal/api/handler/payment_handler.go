package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitgrid/gym-system/internal/api/metrics"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// PaymentHandler exposes the /api/payments routes.
type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentService ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type createPaymentRequest struct {
	MemberID      string  `json:"member_id"      validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Description   string  `json:"description"`
}

// List returns all payments with member details resolved.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.paymentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"payments": payments})
}

// Create records a payment.
//
// @Summary      Record payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.paymentService.Create(c.Request().Context(), ports.CreatePaymentInput{
		MemberID:      req.MemberID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Payment recorded successfully",
		"payment": payment,
	})
}
