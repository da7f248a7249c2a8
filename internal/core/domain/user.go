package domain

import (
	"errors"
	"time"
)

const (
	RoleMember = "member"
	RoleCoach  = "coach"
	RoleAdmin  = "admin"
)

const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountDeactivated = errors.New("account deactivated")
var ErrInvalidRole = errors.New("invalid role")
var ErrSelfAction = errors.New("cannot perform this action on own account")
var ErrMissingUserFields = errors.New("name, email and password are required")
var ErrAdminRegistration = errors.New("cannot register as admin")

// ValidRole reports whether role is one of the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleMember, RoleCoach, RoleAdmin:
		return true
	}
	return false
}

// User models an authentication identity, distinct from the Member business
// record. GoogleID is set only on accounts linked to a Google identity; any
// number of users with no GoogleID may coexist.
type User struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	Name           string     `json:"name" bson:"name"`
	Email          string     `json:"email" bson:"email"`
	PasswordHash   string     `json:"-" bson:"password,omitempty"`
	Role           string     `json:"role" bson:"role"`
	GoogleID       string     `json:"-" bson:"google_id,omitempty"`
	ProfilePicture string     `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	AuthProvider   string     `json:"auth_provider" bson:"auth_provider"`
	IsActive       bool       `json:"is_active" bson:"is_active"`
	LastLogin      *time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}
