package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/um6p-sci/solidarity-api/schema"
)

type ChatTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewChatTestSuite(connURI, dbName string) *ChatTestSuite {
	return &ChatTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ChatTestSuite) SetupSuite() {
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

	ctx := context.Background()
	if _, err := s.testDatabase.Collection(schema.UserCollection).InsertMany(ctx, []interface{}{
		requesterAlice,
		helperBadr,
		helperChafik,
	}); err != nil {
		s.T().Fatal(err)
	}
}

// CleanMongoDB drop the whole test mongodb
func (s *ChatTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// openEngagement walks a fresh request through offer and acceptance and
// returns the resulting chat.
func (s *ChatTestSuite) openEngagement(store MongoStore) *schema.Chat {
	request, err := store.CreateRequest(schema.Request{
		UserID:         requesterAlice.ID,
		UserEmail:      requesterAlice.Email,
		UserName:       requesterAlice.FullName,
		Category:       schema.CategoryMaterials,
		SpecificDetail: "Calculator",
	})
	s.Require().NoError(err)

	offer, err := store.CreateOffer(helperBadr, request.ID, "you can borrow mine")
	s.Require().NoError(err)

	_, chat, err := store.AcceptOffer(requesterAlice.ID, offer.ID)
	s.Require().NoError(err)

	return chat
}

func (s *ChatTestSuite) TestSendMessage() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	chat := s.openEngagement(store)

	message, err := store.SendMessage(chat.ID, requesterAlice.ID, "hello, when can we meet?")
	s.NoError(err)
	s.False(message.Read)

	updated, err := store.GetChat(chat.ID)
	s.NoError(err)
	s.Equal("hello, when can we meet?", updated.LastMessage)
	s.Equal(0, updated.UnreadCount[requesterAlice.ID])
	s.Equal(1, updated.UnreadCount[helperBadr.ID])

	_, err = store.SendMessage(chat.ID, requesterAlice.ID, "   ")
	s.Equal(ErrEmptyMessage, err)

	_, err = store.SendMessage(chat.ID, helperChafik.ID, "let me in")
	s.Equal(ErrNotChatParticipant, err)
}

func (s *ChatTestSuite) TestMarkChatRead() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	chat := s.openEngagement(store)

	_, err := store.SendMessage(chat.ID, requesterAlice.ID, "first")
	s.Require().NoError(err)
	_, err = store.SendMessage(chat.ID, requesterAlice.ID, "second")
	s.Require().NoError(err)

	s.NoError(store.MarkChatRead(chat.ID, helperBadr.ID))

	updated, err := store.GetChat(chat.ID)
	s.NoError(err)
	s.Equal(0, updated.UnreadCount[helperBadr.ID])

	messages, err := store.ListMessages(chat.ID, helperBadr.ID)
	s.NoError(err)
	s.Require().Len(messages, 2)
	s.True(messages[0].Read)
	s.True(messages[1].Read)

	// repeating the mark is harmless
	s.NoError(store.MarkChatRead(chat.ID, helperBadr.ID))
}

func (s *ChatTestSuite) TestListMessagesOrderedOldestFirst() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	chat := s.openEngagement(store)

	_, err := store.SendMessage(chat.ID, requesterAlice.ID, "one")
	s.Require().NoError(err)
	_, err = store.SendMessage(chat.ID, helperBadr.ID, "two")
	s.Require().NoError(err)
	_, err = store.SendMessage(chat.ID, requesterAlice.ID, "three")
	s.Require().NoError(err)

	messages, err := store.ListMessages(chat.ID, requesterAlice.ID)
	s.NoError(err)
	s.Require().Len(messages, 3)
	s.Equal("one", messages[0].Text)
	s.Equal("two", messages[1].Text)
	s.Equal("three", messages[2].Text)

	_, err = store.ListMessages(chat.ID, helperChafik.ID)
	s.Equal(ErrNotChatParticipant, err)
}

func (s *ChatTestSuite) TestLeaveAndRevive() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	chat := s.openEngagement(store)

	s.NoError(store.LeaveChat(chat.ID, helperBadr.ID))

	// the leaver no longer sees the chat
	chats, err := store.ListChatsByParticipant(helperBadr.ID)
	s.NoError(err)
	for _, c := range chats {
		s.NotEqual(chat.ID, c.ID)
	}

	// the document and the other side survive the leave
	kept, err := store.GetChat(chat.ID)
	s.NoError(err)
	s.True(kept.HasParticipant(requesterAlice.ID))

	revived, err := store.ReviveChat(chat.ID, helperBadr.ID)
	s.NoError(err)
	s.True(revived.HasParticipant(helperBadr.ID))

	// only the original two parties can be revived into the chat
	_, err = store.ReviveChat(chat.ID, helperChafik.ID)
	s.Equal(ErrNotChatParticipant, err)
}

func TestChatTestSuite(t *testing.T) {
	suite.Run(t, NewChatTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-chat"))
}
