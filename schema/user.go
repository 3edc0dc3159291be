package schema

import (
	"time"
)

const (
	UserCollection = "users"
)

const (
	RoleStudent = "Student"
	RoleStaff   = "Staff"
	RoleAdmin   = "admin"
)

const (
	UserActive    = "active"
	UserSuspended = "suspended"
)

// User - a registered campus identity. Field names are the wire format
// shared with the original frontend and must not be renamed.
type User struct {
	ID               string    `bson:"_id" json:"id"`
	FullName         string    `bson:"fullName" json:"fullName"`
	Email            string    `bson:"email" json:"email"`
	Gender           string    `bson:"gender,omitempty" json:"gender,omitempty"`
	Role             string    `bson:"role" json:"role"`
	Campus           string    `bson:"campus" json:"campus"`
	NapsCardNumber   string    `bson:"napsCardNumber,omitempty" json:"napsCardNumber,omitempty"`
	Department       string    `bson:"department,omitempty" json:"department,omitempty"`
	EducationalLevel string    `bson:"educationalLevel,omitempty" json:"educationalLevel,omitempty"`
	Status           string    `bson:"status" json:"status"`
	PasswordHash     string    `bson:"passwordHash" json:"-"`
	EmailVerified    bool      `bson:"emailVerified" json:"emailVerified"`
	VerificationCode string    `bson:"verificationCode,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}
