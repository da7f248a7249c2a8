package ports

import (
	"context"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

// ScheduleRepository defines persistence operations for class schedules.
type ScheduleRepository interface {
	List(ctx context.Context) ([]*domain.Schedule, error)
	FindByID(ctx context.Context, id string) (*domain.Schedule, error)
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	Replace(ctx context.Context, schedule *domain.Schedule) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ScheduleInput carries the mutable schedule fields for create and update.
type ScheduleInput struct {
	ClassName string
	CoachID   string
	Day       string
	StartTime string
	EndTime   string
	Capacity  int
}

// ScheduleDetail is a schedule with its coach's display fields resolved, the
// shape returned by list and get.
type ScheduleDetail struct {
	domain.Schedule
	CoachName           string `json:"coach_name,omitempty"`
	CoachSpecialization string `json:"coach_specialization,omitempty"`
}

// ScheduleService manages class schedules.
type ScheduleService interface {
	List(ctx context.Context) ([]*ScheduleDetail, error)
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	Create(ctx context.Context, input ScheduleInput) (*domain.Schedule, error)
	Update(ctx context.Context, id string, input ScheduleInput) (*domain.Schedule, error)
	Delete(ctx context.Context, id string) (bool, error)
}
