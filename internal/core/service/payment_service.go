package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// PaymentService records and lists member payments.
type PaymentService struct {
	payments ports.PaymentRepository
	members  ports.MemberRepository
	logger   zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, members ports.MemberRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, members: members, logger: logger}
}

// List returns all payments with the paying member's name and email
// resolved. A payment whose member has since been deleted is still listed.
func (s *PaymentService) List(ctx context.Context) ([]*ports.PaymentDetail, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}

	memberCache := make(map[string]*domain.Member)
	details := make([]*ports.PaymentDetail, 0, len(payments))
	for _, p := range payments {
		detail := &ports.PaymentDetail{Payment: *p}
		if p.MemberID != "" {
			member, ok := memberCache[p.MemberID]
			if !ok {
				member, err = s.members.FindByID(ctx, p.MemberID)
				if err != nil && !errors.Is(err, domain.ErrMemberNotFound) {
					return nil, err
				}
				memberCache[p.MemberID] = member
			}
			if member != nil {
				detail.MemberName = member.Name
				detail.MemberEmail = member.Email
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *PaymentService) Create(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
	if input.MemberID == "" || input.Amount <= 0 || input.PaymentMethod == "" {
		return nil, domain.ErrInvalidPayment
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		MemberID:      input.MemberID,
		Amount:        input.Amount,
		PaymentDate:   now,
		PaymentMethod: input.PaymentMethod,
		Status:        domain.PaymentStatusCompleted,
		Description:   input.Description,
		Reference:     uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("member_id", created.MemberID).
		Float64("amount", created.Amount).
		Str("reference", created.Reference).
		Msg("payment recorded")

	return created, nil
}
