package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// ScheduleService manages class schedules.
type ScheduleService struct {
	schedules ports.ScheduleRepository
	coaches   ports.CoachRepository
	logger    zerolog.Logger
}

func NewScheduleService(schedules ports.ScheduleRepository, coaches ports.CoachRepository, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{schedules: schedules, coaches: coaches, logger: logger}
}

// List returns all schedules with each coach's display fields resolved.
// Coaches are looked up once per distinct id; a deleted coach leaves the
// display fields empty rather than failing the listing.
func (s *ScheduleService) List(ctx context.Context) ([]*ports.ScheduleDetail, error) {
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return nil, err
	}

	coachCache := make(map[string]*domain.Coach)
	details := make([]*ports.ScheduleDetail, 0, len(schedules))
	for _, sched := range schedules {
		detail := &ports.ScheduleDetail{Schedule: *sched}
		if sched.CoachID != "" {
			coach, ok := coachCache[sched.CoachID]
			if !ok {
				coach, err = s.coaches.FindByID(ctx, sched.CoachID)
				if err != nil && !errors.Is(err, domain.ErrCoachNotFound) {
					return nil, err
				}
				coachCache[sched.CoachID] = coach
			}
			if coach != nil {
				detail.CoachName = coach.Name
				detail.CoachSpecialization = coach.Specialization
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.schedules.FindByID(ctx, id)
}

func (s *ScheduleService) Create(ctx context.Context, input ports.ScheduleInput) (*domain.Schedule, error) {
	now := time.Now().UTC()
	capacity := input.Capacity
	if capacity <= 0 {
		capacity = domain.DefaultScheduleCapacity
	}

	schedule := &domain.Schedule{
		ClassName:       input.ClassName,
		CoachID:         input.CoachID,
		Day:             input.Day,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Capacity:        capacity,
		EnrolledMembers: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.schedules.Create(ctx, schedule)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("class", created.ClassName).Str("day", created.Day).Msg("schedule created")
	return created, nil
}

func (s *ScheduleService) Update(ctx context.Context, id string, input ports.ScheduleInput) (*domain.Schedule, error) {
	existing, err := s.schedules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ClassName = input.ClassName
	existing.CoachID = input.CoachID
	existing.Day = input.Day
	existing.StartTime = input.StartTime
	existing.EndTime = input.EndTime
	if input.Capacity > 0 {
		existing.Capacity = input.Capacity
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.schedules.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id string) (bool, error) {
	return s.schedules.Delete(ctx, id)
}
