package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

const paymentsCollection = "payments"

// PaymentRepository persists payment records.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	MemberID      string             `bson:"member_id"`
	Amount        float64            `bson:"amount"`
	PaymentDate   time.Time          `bson:"payment_date"`
	PaymentMethod string             `bson:"payment_method"`
	Status        string             `bson:"status"`
	Description   string             `bson:"description,omitempty"`
	Reference     string             `bson:"reference"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toPaymentDoc(p *domain.Payment) paymentDoc {
	return paymentDoc{
		MemberID:      p.MemberID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		Description:   p.Description,
		Reference:     p.Reference,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (d paymentDoc) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            d.ID.Hex(),
		MemberID:      d.MemberID,
		Amount:        d.Amount,
		PaymentDate:   d.PaymentDate,
		PaymentMethod: d.PaymentMethod,
		Status:        d.Status,
		Description:   d.Description,
		Reference:     d.Reference,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *PaymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []paymentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}

	payments := make([]*domain.Payment, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, d.toDomain())
	}
	return payments, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toPaymentDoc(payment))
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *payment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// SumAmounts totals all payment amounts with a single aggregation.
func (r *PaymentRepository) SumAmounts(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode payment sum: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
