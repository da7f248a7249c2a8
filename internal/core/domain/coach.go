package domain

import (
	"errors"
	"time"
)

var ErrCoachNotFound = errors.New("coach not found")

// Coach is a staff record. A Coach with a password at creation time also gets
// a linked User with role "coach".
type Coach struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	Phone          string    `json:"phone" bson:"phone"`
	Specialization string    `json:"specialization" bson:"specialization"`
	Experience     int       `json:"experience,omitempty" bson:"experience,omitempty"`
	Status         string    `json:"status" bson:"status"`
	Salary         float64   `json:"salary,omitempty" bson:"salary,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
