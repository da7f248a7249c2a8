package ports

import (
	"context"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	List(ctx context.Context) ([]*domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	// SumAmounts returns the total of all payment amounts.
	SumAmounts(ctx context.Context) (float64, error)
}

// CreatePaymentInput carries a new payment record.
type CreatePaymentInput struct {
	MemberID      string
	Amount        float64
	PaymentMethod string
	Description   string
}

// PaymentDetail is a payment with the paying member's display fields
// resolved.
type PaymentDetail struct {
	domain.Payment
	MemberName  string `json:"member_name,omitempty"`
	MemberEmail string `json:"member_email,omitempty"`
}

// PaymentService records and lists payments.
type PaymentService interface {
	List(ctx context.Context) ([]*PaymentDetail, error)
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
}
