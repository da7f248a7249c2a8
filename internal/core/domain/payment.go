package domain

import (
	"errors"
	"time"
)

const PaymentStatusCompleted = "completed"

var ErrPaymentNotFound = errors.New("payment not found")
var ErrInvalidPayment = errors.New("member id, amount and payment method are required")

// Payment records a single payment made by a member.
type Payment struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	MemberID      string    `json:"member_id" bson:"member_id"`
	Amount        float64   `json:"amount" bson:"amount"`
	PaymentDate   time.Time `json:"payment_date" bson:"payment_date"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method"`
	Status        string    `json:"status" bson:"status"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	// Reference is a server-assigned receipt identifier.
	Reference string    `json:"reference" bson:"reference"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
