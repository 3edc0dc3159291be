package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/um6p-sci/solidarity-api/schema"
)

type NotificationTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewNotificationTestSuite(connURI, dbName string) *NotificationTestSuite {
	return &NotificationTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *NotificationTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *NotificationTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *NotificationTestSuite) TestCreateNotificationRejectsUnknownType() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateNotification(schema.Notification{
		RecipientID: "dina",
		Type:        schema.NotificationType("something_new"),
		Title:       "?",
	})
	s.Equal(schema.ErrUnknownNotificationType, err)
}

func (s *NotificationTestSuite) TestListRecentNotifications() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	for i := 0; i < 25; i++ {
		_, err := store.CreateNotification(schema.Notification{
			RecipientID: "emna",
			Type:        schema.NotificationOfferReceived,
			Title:       "New Offer for Help! 🤝",
			Message:     fmt.Sprintf("offer %d", i),
			RequestID:   fmt.Sprintf("request-%d", i),
		})
		s.Require().NoError(err)
	}

	notifications, unread, err := store.ListRecentNotifications("emna")
	s.NoError(err)

	// the feed is capped while the unread counter covers everything
	s.Len(notifications, NotificationFeedLimit)
	s.Equal(25, unread)

	for i := 1; i < len(notifications); i++ {
		s.False(notifications[i-1].CreatedAt.Before(notifications[i].CreatedAt))
	}

	s.NoError(store.MarkNotificationRead("emna", notifications[0].ID))

	_, unread, err = store.ListRecentNotifications("emna")
	s.NoError(err)
	s.Equal(24, unread)

	// marking twice is a no-op
	s.NoError(store.MarkNotificationRead("emna", notifications[0].ID))
	_, unread, err = store.ListRecentNotifications("emna")
	s.NoError(err)
	s.Equal(24, unread)
}

func (s *NotificationTestSuite) TestMarkNotificationReadScopedToRecipient() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateNotification(schema.Notification{
		RecipientID: "farid",
		Type:        schema.NotificationOfferDeclined,
		Title:       "Offer Declined",
	})
	s.Require().NoError(err)

	s.Equal(ErrNotificationNotFound, store.MarkNotificationRead("someone-else", created.ID))
}

func (s *NotificationTestSuite) TestNextRatingPrompt() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	prompt, err := store.NextRatingPrompt("ghita")
	s.NoError(err)
	s.Nil(prompt)

	first, err := store.CreateNotification(schema.Notification{
		RecipientID: "ghita",
		Type:        schema.NotificationRatingReceived,
		Title:       "You received a rating! ⭐",
		RequestID:   "request-a",
	})
	s.Require().NoError(err)

	second, err := store.CreateNotification(schema.Notification{
		RecipientID: "ghita",
		Type:        schema.NotificationRatingReceived,
		Title:       "You received a rating! ⭐",
		RequestID:   "request-b",
	})
	s.Require().NoError(err)

	seen := map[string]bool{}

	prompt, err = store.NextRatingPrompt("ghita")
	s.NoError(err)
	s.Require().NotNil(prompt)
	seen[prompt.ID] = true

	prompt, err = store.NextRatingPrompt("ghita")
	s.NoError(err)
	s.Require().NotNil(prompt)
	seen[prompt.ID] = true

	// each nudge is handed out exactly once
	s.True(seen[first.ID])
	s.True(seen[second.ID])

	prompt, err = store.NextRatingPrompt("ghita")
	s.NoError(err)
	s.Nil(prompt)
}

func TestNotificationTestSuite(t *testing.T) {
	suite.Run(t, NewNotificationTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-notification"))
}
