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

const coachesCollection = "coaches"

// CoachRepository persists coach records.
type CoachRepository struct {
	coll *mongo.Collection
}

func NewCoachRepository(db *mongo.Database) *CoachRepository {
	return &CoachRepository{coll: db.Collection(coachesCollection)}
}

type coachDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Phone          string             `bson:"phone"`
	Specialization string             `bson:"specialization"`
	Experience     int                `bson:"experience,omitempty"`
	Status         string             `bson:"status"`
	Salary         float64            `bson:"salary,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func toCoachDoc(c *domain.Coach) coachDoc {
	return coachDoc{
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Specialization: c.Specialization,
		Experience:     c.Experience,
		Status:         c.Status,
		Salary:         c.Salary,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (d coachDoc) toDomain() *domain.Coach {
	return &domain.Coach{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Specialization: d.Specialization,
		Experience:     d.Experience,
		Status:         d.Status,
		Salary:         d.Salary,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *CoachRepository) List(ctx context.Context) ([]*domain.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []coachDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode coaches: %w", err)
	}

	coaches := make([]*domain.Coach, 0, len(docs))
	for _, d := range docs {
		coaches = append(coaches, d.toDomain())
	}
	return coaches, nil
}

func (r *CoachRepository) FindByID(ctx context.Context, id string) (*domain.Coach, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCoachNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc coachDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCoachNotFound
		}
		return nil, fmt.Errorf("find coach: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CoachRepository) Create(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toCoachDoc(coach))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert coach: %w", err)
	}

	created := *coach
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CoachRepository) Replace(ctx context.Context, coach *domain.Coach) error {
	oid, err := primitive.ObjectIDFromHex(coach.ID)
	if err != nil {
		return domain.ErrCoachNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toCoachDoc(coach))
	if err != nil {
		return fmt.Errorf("replace coach: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCoachNotFound
	}
	return nil
}

func (r *CoachRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete coach: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *CoachRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count coaches: %w", err)
	}
	return n, nil
}
