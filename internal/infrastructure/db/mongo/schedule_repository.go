package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

const schedulesCollection = "schedules"

// ScheduleRepository persists class schedules.
type ScheduleRepository struct {
	coll *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{coll: db.Collection(schedulesCollection)}
}

type scheduleDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ClassName       string             `bson:"class_name"`
	CoachID         string             `bson:"coach_id"`
	Day             string             `bson:"day"`
	StartTime       string             `bson:"start_time"`
	EndTime         string             `bson:"end_time"`
	Capacity        int                `bson:"capacity"`
	EnrolledMembers []string           `bson:"enrolled_members"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func toScheduleDoc(s *domain.Schedule) scheduleDoc {
	enrolled := s.EnrolledMembers
	if enrolled == nil {
		enrolled = []string{}
	}
	return scheduleDoc{
		ClassName:       s.ClassName,
		CoachID:         s.CoachID,
		Day:             s.Day,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Capacity:        s.Capacity,
		EnrolledMembers: enrolled,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (d scheduleDoc) toDomain() *domain.Schedule {
	return &domain.Schedule{
		ID:              d.ID.Hex(),
		ClassName:       d.ClassName,
		CoachID:         d.CoachID,
		Day:             d.Day,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		Capacity:        d.Capacity,
		EnrolledMembers: d.EnrolledMembers,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (r *ScheduleRepository) List(ctx context.Context) ([]*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []scheduleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode schedules: %w", err)
	}

	schedules := make([]*domain.Schedule, 0, len(docs))
	for _, d := range docs {
		schedules = append(schedules, d.toDomain())
	}
	return schedules, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*domain.Schedule, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrScheduleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc scheduleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toScheduleDoc(schedule))
	if err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}

	created := *schedule
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ScheduleRepository) Replace(ctx context.Context, schedule *domain.Schedule) error {
	oid, err := primitive.ObjectIDFromHex(schedule.ID)
	if err != nil {
		return domain.ErrScheduleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toScheduleDoc(schedule))
	if err != nil {
		return fmt.Errorf("replace schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete schedule: %w", err)
	}
	return res.DeletedCount > 0, nil
}
