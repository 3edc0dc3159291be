package schema

import (
	"time"
)

const (
	RequestCollection = "requests"
)

const (
	RequestOpen      = "open"
	RequestAssigned  = "assigned"
	RequestCompleted = "completed"
)

const (
	UrgencyNormal = "normal"
	UrgencyUrgent = "urgent"
)

const (
	CategoryAcademic   = "Academic"
	CategoryMaterials  = "Materials"
	CategoryTransport  = "Transport"
	CategoryMentorship = "Mentorship"
	CategoryWellBeing  = "Well-being"
)

// Categories lists every help category a request may carry.
var Categories = []string{
	CategoryAcademic,
	CategoryMaterials,
	CategoryTransport,
	CategoryMentorship,
	CategoryWellBeing,
}

// IsValidCategory reports whether c is one of the enumerated categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Request - a student's posted ask for help. `assignedTo` is set only
// while the request is assigned or completed and always references the
// helper of the accepted offer.
type Request struct {
	ID             string    `bson:"_id" json:"id"`
	UserID         string    `bson:"userId" json:"userId"`
	UserEmail      string    `bson:"userEmail" json:"userEmail"`
	UserName       string    `bson:"userName" json:"userName"`
	Category       string    `bson:"category" json:"category"`
	SpecificDetail string    `bson:"specificDetail" json:"specificDetail"`
	Details        string    `bson:"details" json:"details"`
	Urgency        string    `bson:"urgency" json:"urgency"`
	IsAnonymous    bool      `bson:"isAnonymous" json:"isAnonymous"`
	Status         string    `bson:"status" json:"status"`
	AssignedTo     string    `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
