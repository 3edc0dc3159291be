package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexRequestCollection())
	panicIfError(m.IndexOfferCollection())
	panicIfError(m.IndexChatCollection())
	panicIfError(m.IndexMessageCollection())
	panicIfError(m.IndexNotificationCollection())
	panicIfError(m.IndexRatingCollection())
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexRequestCollection() error {
	if err := m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"userId": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"status": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexOfferCollection() error {
	if err := m.createIndex(OfferCollection, mongo.IndexModel{
		Keys: bson.M{
			"requestOwnerId": 1,
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(OfferCollection, mongo.IndexModel{
		Keys: bson.M{
			"requestId": 1,
		},
	}); err != nil {
		return err
	}

	// at most one accepted offer per (requestId, helperId)
	return m.createIndex(OfferCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "requestId", Value: 1},
			{Key: "helperId", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": OfferAccepted}),
	})
}

func (m *MongoDBIndexer) IndexChatCollection() error {
	if err := m.createIndex(ChatCollection, mongo.IndexModel{
		Keys: bson.M{
			"requestId": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ChatCollection, mongo.IndexModel{
		Keys: bson.M{
			"participants": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexMessageCollection() error {
	return m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "chatId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexNotificationCollection() error {
	return m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "recipientId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexRatingCollection() error {
	// one rating per direction per request
	return m.createIndex(RatingCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "requestId", Value: 1},
			{Key: "raterId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
