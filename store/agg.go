package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/um6p-sci/solidarity-api/schema"
)

// whole-collection fetches backing the dashboard snapshot

func (m *mongoDB) listAllRequests() ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	requests := make([]schema.Request, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

func (m *mongoDB) listAllOffers() ([]schema.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.OfferCollection)
	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	offers := make([]schema.Offer, 0)
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}

func (m *mongoDB) listAllRatings() ([]schema.Rating, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RatingCollection)
	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	ratings := make([]schema.Rating, 0)
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}

	return ratings, nil
}
