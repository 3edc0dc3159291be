package schema

import (
	"errors"
	"time"
)

const (
	NotificationCollection = "notifications"
)

var ErrUnknownNotificationType = errors.New("unknown notification type")

// NotificationType is a closed set; HandleNotificationType forces every
// consumer to treat the set exhaustively.
type NotificationType string

const (
	NotificationOfferReceived  NotificationType = "offer_received"
	NotificationOfferAccepted  NotificationType = "offer_accepted"
	NotificationOfferDeclined  NotificationType = "offer_declined"
	NotificationRatingReceived NotificationType = "rating_received"
)

// NotificationTypes lists every notification kind the system emits.
var NotificationTypes = []NotificationType{
	NotificationOfferReceived,
	NotificationOfferAccepted,
	NotificationOfferDeclined,
	NotificationRatingReceived,
}

// IsValid reports whether t is one of the enumerated kinds.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationOfferReceived,
		NotificationOfferAccepted,
		NotificationOfferDeclined,
		NotificationRatingReceived:
		return true
	}
	return false
}

// NotificationHandler dispatches on the closed notification kind set.
// Adding a new kind without extending a handler fails at construction
// time instead of silently falling through.
type NotificationHandler struct {
	OfferReceived  func(Notification) error
	OfferAccepted  func(Notification) error
	OfferDeclined  func(Notification) error
	RatingReceived func(Notification) error
}

// Handle routes n to the matching branch.
func (h NotificationHandler) Handle(n Notification) error {
	switch n.Type {
	case NotificationOfferReceived:
		return h.OfferReceived(n)
	case NotificationOfferAccepted:
		return h.OfferAccepted(n)
	case NotificationOfferDeclined:
		return h.OfferDeclined(n)
	case NotificationRatingReceived:
		return h.RatingReceived(n)
	default:
		return ErrUnknownNotificationType
	}
}

// Notification - a one-way advisory message to a single recipient.
// Immutable after creation except for the read flag.
type Notification struct {
	ID          string           `bson:"_id" json:"id"`
	RecipientID string           `bson:"recipientId" json:"recipientId"`
	Type        NotificationType `bson:"type" json:"type"`
	Title       string           `bson:"title" json:"title"`
	Message     string           `bson:"message" json:"message"`
	RequestID   string           `bson:"requestId" json:"requestId"`
	Read        bool             `bson:"read" json:"read"`
	CreatedAt   time.Time        `bson:"createdAt" json:"createdAt"`
}
