package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/um6p-sci/solidarity-api/schema"
)

var (
	ErrRequestNotFound  = fmt.Errorf("the request does not exist")
	ErrNotRequestOwner  = fmt.Errorf("only the request owner may do this")
	ErrInvalidCategory  = fmt.Errorf("unknown request category")
	ErrRequestCompleted = fmt.Errorf("a completed request cannot be changed")
)

// RequestStore persists help requests.
type RequestStore interface {
	CreateRequest(request schema.Request) (*schema.Request, error)
	GetRequest(id string) (*schema.Request, error)
	UpdateRequest(ownerID, id string, fields RequestEdit) error
	DeleteRequest(ownerID, id string) error
	ListOpenRequests(excludeOwnerID string) ([]schema.Request, error)
	ListRequestsByOwner(ownerID string) ([]schema.Request, error)
}

// RequestEdit carries the owner-editable fields. Status, assignedTo and
// createdAt are never part of an edit.
type RequestEdit struct {
	Category       string `json:"category"`
	SpecificDetail string `json:"specificDetail"`
	Details        string `json:"details"`
	Urgency        string `json:"urgency"`
	IsAnonymous    bool   `json:"isAnonymous"`
}

// CreateRequest inserts an open request with server-assigned timestamps.
func (m *mongoDB) CreateRequest(request schema.Request) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if !schema.IsValidCategory(request.Category) {
		return nil, ErrInvalidCategory
	}

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	request.Status = schema.RequestOpen
	request.AssignedTo = ""
	if request.Urgency == "" {
		request.Urgency = schema.UrgencyNormal
	}
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	if _, err := c.InsertOne(ctx, request); err != nil {
		return nil, err
	}

	return &request, nil
}

func (m *mongoDB) GetRequest(id string) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// UpdateRequest edits category/details fields in place. The filter pins
// ownership so a non-owner edit matches nothing.
func (m *mongoDB) UpdateRequest(ownerID, id string, fields RequestEdit) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if !schema.IsValidCategory(fields.Category) {
		return ErrInvalidCategory
	}

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id, "userId": ownerID},
		bson.M{"$set": bson.M{
			"category":       fields.Category,
			"specificDetail": fields.SpecificDetail,
			"details":        fields.Details,
			"urgency":        fields.Urgency,
			"isAnonymous":    fields.IsAnonymous,
			"updatedAt":      time.Now().UTC(),
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return m.explainRequestMiss(ctx, id, ownerID)
	}

	return nil
}

// DeleteRequest removes the request document outright. Offers and
// notifications referencing it are left behind on purpose; readers
// tolerate the orphans.
func (m *mongoDB) DeleteRequest(ownerID, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	result, err := c.DeleteOne(ctx, bson.M{
		"_id":    id,
		"userId": ownerID,
		"status": bson.M{"$ne": schema.RequestCompleted},
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		if err := m.explainRequestMiss(ctx, id, ownerID); err != nil {
			return err
		}
		return ErrRequestCompleted
	}

	return nil
}

// explainRequestMiss distinguishes "gone" from "not yours" after a
// guarded write matched nothing.
func (m *mongoDB) explainRequestMiss(ctx context.Context, id, ownerID string) error {
	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrRequestNotFound
		}
		return err
	}
	if request.UserID != ownerID {
		return ErrNotRequestOwner
	}

	return nil
}

// ListOpenRequests returns every open request except the viewer's own,
// newest first. Sorting happens in process; the query itself needs no
// composite index.
func (m *mongoDB) ListOpenRequests(excludeOwnerID string) ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	cursor, err := c.Find(ctx, bson.M{"status": schema.RequestOpen})
	if err != nil {
		return nil, err
	}

	requests := make([]schema.Request, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	filtered := requests[:0]
	for _, r := range requests {
		if r.UserID != excludeOwnerID {
			filtered = append(filtered, r)
		}
	}
	sortRequestsNewestFirst(filtered)

	return filtered, nil
}

func (m *mongoDB) ListRequestsByOwner(ownerID string) ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	cursor, err := c.Find(ctx, bson.M{"userId": ownerID})
	if err != nil {
		return nil, err
	}

	requests := make([]schema.Request, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	sortRequestsNewestFirst(requests)

	return requests, nil
}

func sortRequestsNewestFirst(requests []schema.Request) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}
