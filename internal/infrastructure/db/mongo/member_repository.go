package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

const membersCollection = "members"

// MemberRepository persists membership records.
type MemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{coll: db.Collection(membersCollection)}
}

type memberDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	Phone            string             `bson:"phone"`
	MembershipType   string             `bson:"membership_type"`
	Status           string             `bson:"status"`
	JoinDate         time.Time          `bson:"join_date"`
	ExpirationDate   *time.Time         `bson:"expiration_date,omitempty"`
	IsTrial          bool               `bson:"is_trial"`
	IsStudent        bool               `bson:"is_student"`
	Address          string             `bson:"address,omitempty"`
	EmergencyContact string             `bson:"emergency_contact,omitempty"`
	CoachID          string             `bson:"coach_id,omitempty"`
	CoachName        string             `bson:"coach_name,omitempty"`
	Age              int                `bson:"age,omitempty"`
	Password         string             `bson:"password,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func toMemberDoc(m *domain.Member) memberDoc {
	return memberDoc{
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		MembershipType:   m.MembershipType,
		Status:           m.Status,
		JoinDate:         m.JoinDate,
		ExpirationDate:   m.ExpirationDate,
		IsTrial:          m.IsTrial,
		IsStudent:        m.IsStudent,
		Address:          m.Address,
		EmergencyContact: m.EmergencyContact,
		CoachID:          m.CoachID,
		CoachName:        m.CoachName,
		Age:              m.Age,
		Password:         m.PasswordHash,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (d memberDoc) toDomain() *domain.Member {
	return &domain.Member{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Email:            d.Email,
		Phone:            d.Phone,
		MembershipType:   d.MembershipType,
		Status:           d.Status,
		JoinDate:         d.JoinDate,
		ExpirationDate:   d.ExpirationDate,
		IsTrial:          d.IsTrial,
		IsStudent:        d.IsStudent,
		Address:          d.Address,
		EmergencyContact: d.EmergencyContact,
		CoachID:          d.CoachID,
		CoachName:        d.CoachName,
		Age:              d.Age,
		PasswordHash:     d.Password,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []memberDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}

	members := make([]*domain.Member, 0, len(docs))
	for _, d := range docs {
		members = append(members, d.toDomain())
	}
	return members, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc memberDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMemberDoc(member))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	created := *member
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MemberRepository) Replace(ctx context.Context, member *domain.Member) error {
	oid, err := primitive.ObjectIDFromHex(member.ID)
	if err != nil {
		return domain.ErrMemberNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMemberDoc(member))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("replace member: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete member: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}

func (r *MemberRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("count members by status: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique email index on members.
func (r *MemberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
