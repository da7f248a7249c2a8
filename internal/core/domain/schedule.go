package domain

import (
	"errors"
	"time"
)

const DefaultScheduleCapacity = 20

var ErrScheduleNotFound = errors.New("schedule not found")

// Schedule is a recurring class slot taught by a coach.
type Schedule struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	ClassName       string    `json:"class_name" bson:"class_name"`
	CoachID         string    `json:"coach_id" bson:"coach_id"`
	Day             string    `json:"day" bson:"day"`
	StartTime       string    `json:"start_time" bson:"start_time"`
	EndTime         string    `json:"end_time" bson:"end_time"`
	Capacity        int       `json:"capacity" bson:"capacity"`
	EnrolledMembers []string  `json:"enrolled_members" bson:"enrolled_members"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
