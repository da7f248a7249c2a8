package domain

import (
	"errors"
	"strings"
	"time"
)

// Membership plan names. Matching is case-insensitive; any other value is
// accepted as a custom plan with no derived expiration.
const (
	PlanTrial   = "Trial"
	PlanMonthly = "Monthly"
	PlanAnnual  = "Annual"
)

const (
	MemberStatusActive  = "active"
	MemberStatusExpired = "expired"
)

var ErrMemberNotFound = errors.New("member not found")
var ErrMissingMemberFields = errors.New("name, email, phone and membership type are required")

// Member is a gym member's business record. It is correlated to a User only
// by email; neither side enforces the link.
type Member struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	Name             string     `json:"name" bson:"name"`
	Email            string     `json:"email" bson:"email"`
	Phone            string     `json:"phone" bson:"phone"`
	MembershipType   string     `json:"membership_type" bson:"membership_type"`
	Status           string     `json:"status" bson:"status"`
	JoinDate         time.Time  `json:"join_date" bson:"join_date"`
	ExpirationDate   *time.Time `json:"expiration_date,omitempty" bson:"expiration_date,omitempty"`
	IsTrial          bool       `json:"is_trial" bson:"is_trial"`
	IsStudent        bool       `json:"is_student" bson:"is_student"`
	Address          string     `json:"address,omitempty" bson:"address,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty" bson:"emergency_contact,omitempty"`
	CoachID          string     `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	CoachName        string     `json:"coach_name,omitempty" bson:"coach_name,omitempty"`
	Age              int        `json:"age,omitempty" bson:"age,omitempty"`
	PasswordHash     string     `json:"-" bson:"password,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
}

// PlanTerm returns the membership duration derived from the plan name and
// whether the plan is one of the known terms.
func PlanTerm(membershipType string) (time.Duration, bool) {
	switch strings.ToLower(membershipType) {
	case strings.ToLower(PlanTrial):
		return 24 * time.Hour, true
	case strings.ToLower(PlanMonthly):
		return 30 * 24 * time.Hour, true
	case strings.ToLower(PlanAnnual):
		return 365 * 24 * time.Hour, true
	}
	return 0, false
}

// IsTrialPlan reports whether the plan name denotes the trial plan.
func IsTrialPlan(membershipType string) bool {
	return strings.EqualFold(membershipType, PlanTrial)
}
