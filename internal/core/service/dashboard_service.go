package service

import (
	"context"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// DashboardService computes the headline counts shown on the dashboard.
type DashboardService struct {
	members  ports.MemberRepository
	coaches  ports.CoachRepository
	payments ports.PaymentRepository
}

func NewDashboardService(members ports.MemberRepository, coaches ports.CoachRepository, payments ports.PaymentRepository) *DashboardService {
	return &DashboardService{members: members, coaches: coaches, payments: payments}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	totalMembers, err := s.members.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeMembers, err := s.members.CountByStatus(ctx, domain.MemberStatusActive)
	if err != nil {
		return nil, err
	}
	totalCoaches, err := s.coaches.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.payments.SumAmounts(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalMembers:  totalMembers,
		ActiveMembers: activeMembers,
		TotalCoaches:  totalCoaches,
		TotalRevenue:  totalRevenue,
	}, nil
}
