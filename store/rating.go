package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/um6p-sci/solidarity-api/schema"
)

// RatingStore reads back ratings; creation happens only through the
// engagement transitions.
type RatingStore interface {
	ListRatingsByRequest(requestID string) ([]schema.Rating, error)
	ListRatingsByRated(ratedID string) ([]schema.Rating, error)
}

func (m *mongoDB) ListRatingsByRequest(requestID string) ([]schema.Rating, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RatingCollection)
	cursor, err := c.Find(ctx, bson.M{"requestId": requestID})
	if err != nil {
		return nil, err
	}

	ratings := make([]schema.Rating, 0)
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}

	return ratings, nil
}

func (m *mongoDB) ListRatingsByRated(ratedID string) ([]schema.Rating, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RatingCollection)
	cursor, err := c.Find(ctx, bson.M{"ratedId": ratedID})
	if err != nil {
		return nil, err
	}

	ratings := make([]schema.Rating, 0)
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}

	return ratings, nil
}
