package schema

import (
	"time"
)

const (
	OfferCollection = "offers"
)

const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferDeclined = "declined"
)

// Offer - a helper's proposal against one request. `requestOwnerId` is
// denormalized so an owner's pending offers resolve with a single query.
type Offer struct {
	ID             string    `bson:"_id" json:"id"`
	RequestID      string    `bson:"requestId" json:"requestId"`
	RequestOwnerID string    `bson:"requestOwnerId" json:"requestOwnerId"`
	HelperID       string    `bson:"helperId" json:"helperId"`
	HelperEmail    string    `bson:"helperEmail" json:"helperEmail"`
	HelperName     string    `bson:"helperName" json:"helperName"`
	Message        string    `bson:"message" json:"message"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
