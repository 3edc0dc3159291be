package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/um6p-sci/solidarity-api/schema"
)

var (
	ErrOfferNotFound = fmt.Errorf("the offer does not exist")
	ErrOwnRequest    = fmt.Errorf("you cannot offer help on your own request")
	ErrRequestClosed = fmt.Errorf("this request is no longer open for offers")
)

// OfferStore persists help offers.
type OfferStore interface {
	CreateOffer(helper schema.User, requestID, message string) (*schema.Offer, error)
	GetOffer(id string) (*schema.Offer, error)
	ListOffersByRequestOwner(ownerID string) ([]schema.Offer, error)
	ListOffersByRequest(requestID string) ([]schema.Offer, error)
}

// CreateOffer submits a pending offer by a non-owner against an open
// request. The request-owner id is denormalized onto the offer.
func (m *mongoDB) CreateOffer(helper schema.User, requestID, message string) (*schema.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID == helper.ID {
		return nil, ErrOwnRequest
	}
	if request.Status != schema.RequestOpen {
		return nil, ErrRequestClosed
	}

	offer := schema.Offer{
		ID:             uuid.New().String(),
		RequestID:      requestID,
		RequestOwnerID: request.UserID,
		HelperID:       helper.ID,
		HelperEmail:    helper.Email,
		HelperName:     helper.FullName,
		Message:        message,
		Status:         schema.OfferPending,
		CreatedAt:      time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.OfferCollection)
	if _, err := c.InsertOne(ctx, offer); err != nil {
		return nil, err
	}

	return &offer, nil
}

func (m *mongoDB) GetOffer(id string) (*schema.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.OfferCollection)

	var offer schema.Offer
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&offer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	return &offer, nil
}

// ListOffersByRequestOwner returns every non-declined offer addressed to
// the owner's requests. Declined offers disappear from the owner's view
// but stay in the collection.
func (m *mongoDB) ListOffersByRequestOwner(ownerID string) ([]schema.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.OfferCollection)
	cursor, err := c.Find(ctx, bson.M{
		"requestOwnerId": ownerID,
		"status":         bson.M{"$ne": schema.OfferDeclined},
	})
	if err != nil {
		return nil, err
	}

	offers := make([]schema.Offer, 0)
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}

func (m *mongoDB) ListOffersByRequest(requestID string) ([]schema.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.OfferCollection)
	cursor, err := c.Find(ctx, bson.M{"requestId": requestID})
	if err != nil {
		return nil, err
	}

	offers := make([]schema.Offer, 0)
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}
