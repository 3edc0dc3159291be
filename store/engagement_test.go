package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/um6p-sci/solidarity-api/schema"
)

var (
	requesterAlice = schema.User{
		ID:            "alice",
		FullName:      "Alice Benali",
		Email:         "alice@um6p.ma",
		Role:          schema.RoleStudent,
		Status:        schema.UserActive,
		EmailVerified: true,
	}
	helperBadr = schema.User{
		ID:            "badr",
		FullName:      "Badr Alaoui",
		Email:         "badr@um6p.ma",
		Role:          schema.RoleStudent,
		Status:        schema.UserActive,
		EmailVerified: true,
	}
	helperChafik = schema.User{
		ID:            "chafik",
		FullName:      "Chafik Idrissi",
		Email:         "chafik@um6p.ma",
		Role:          schema.RoleStudent,
		Status:        schema.UserActive,
		EmailVerified: true,
	}
)

type EngagementTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewEngagementTestSuite(connURI, dbName string) *EngagementTestSuite {
	return &EngagementTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *EngagementTestSuite) SetupSuite() {
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
func (s *EngagementTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *EngagementTestSuite) mustCreateRequest(store MongoStore, owner schema.User) *schema.Request {
	request, err := store.CreateRequest(schema.Request{
		UserID:         owner.ID,
		UserEmail:      owner.Email,
		UserName:       owner.FullName,
		Category:       schema.CategoryAcademic,
		SpecificDetail: "Linear Algebra",
		Details:        "need notes for the midterm",
	})
	s.Require().NoError(err)
	return request
}

func (s *EngagementTestSuite) mustCreateOffer(store MongoStore, helper schema.User, requestID string) *schema.Offer {
	offer, err := store.CreateOffer(helper, requestID, "I can share mine")
	s.Require().NoError(err)
	return offer
}

func (s *EngagementTestSuite) TestAcceptOffer() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request := s.mustCreateRequest(store, requesterAlice)
	offer := s.mustCreateOffer(store, helperBadr, request.ID)

	accepted, chat, err := store.AcceptOffer(requesterAlice.ID, offer.ID)
	s.NoError(err)
	s.Equal(schema.OfferAccepted, accepted.Status)
	s.ElementsMatch([]string{requesterAlice.ID, helperBadr.ID}, chat.Participants)
	s.Equal(schema.ChatStartedMessage, chat.LastMessage)

	updated, err := store.GetRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestAssigned, updated.Status)
	s.Equal(helperBadr.ID, updated.AssignedTo)
}

func (s *EngagementTestSuite) TestAcceptSecondOfferFails() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request := s.mustCreateRequest(store, requesterAlice)
	first := s.mustCreateOffer(store, helperBadr, request.ID)
	second := s.mustCreateOffer(store, helperChafik, request.ID)

	_, _, err := store.AcceptOffer(requesterAlice.ID, first.ID)
	s.NoError(err)

	// the request already left the open state, so the second
	// acceptance must fail and leave the assignment untouched
	_, _, err = store.AcceptOffer(requesterAlice.ID, second.ID)
	s.Equal(ErrRequestNotOpen, err)

	updated, err := store.GetRequest(request.ID)
	s.NoError(err)
	s.Equal(helperBadr.ID, updated.AssignedTo)

	kept, err := store.GetOffer(second.ID)
	s.NoError(err)
	s.Equal(schema.OfferPending, kept.Status)
}

func (s *EngagementTestSuite) TestAcceptOfferNotOwner() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request := s.mustCreateRequest(store, requesterAlice)
	offer := s.mustCreateOffer(store, helperBadr, request.ID)

	_, _, err := store.AcceptOffer(helperChafik.ID, offer.ID)
	s.Equal(ErrNotRequestOwner, err)
}

func (s *EngagementTestSuite) TestDeclineOffer() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request := s.mustCreateRequest(store, requesterAlice)
	offer := s.mustCreateOffer(store, helperBadr, request.ID)

	declined, err := store.DeclineOffer(requesterAlice.ID, offer.ID)
	s.NoError(err)
	s.Equal(schema.OfferDeclined, declined.Status)

	// declining leaves the request open for everyone else
	updated, err := store.GetRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestOpen, updated.Status)

	_, err = store.DeclineOffer(requesterAlice.ID, offer.ID)
	s.Equal(ErrOfferNotPending, err)
}

func (s *EngagementTestSuite) TestCompleteRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request := s.mustCreateRequest(store, requesterAlice)
	offer := s.mustCreateOffer(store, helperBadr, request.ID)

	_, chat, err := store.AcceptOffer(requesterAlice.ID, offer.ID)
	s.NoError(err)

	rating, err := store.CompleteRequest(requesterAlice.ID, request.ID, 5)
	s.NoError(err)
	s.Equal(helperBadr.ID, rating.RatedID)
	s.Equal(schema.RaterRoleRequester, rating.RaterRole)
	s.Equal(5, rating.Rating)

	updated, err := store.GetRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestCompleted, updated.Status)

	// the conversation goes away with the engagement
	_, err = store.GetChat(chat.ID)
	s.Equal(ErrChatNotFound, err)

	// a completed request cannot complete twice
	_, err = store.CompleteRequest(requesterAlice.ID, request.ID, 4)
	s.Equal(ErrRequestNotAssigned, err)
}

func (s *EngagementTestSuite) TestCompleteRequestScoreBounds() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request := s.mustCreateRequest(store, requesterAlice)
	offer := s.mustCreateOffer(store, helperBadr, request.ID)

	_, _, err := store.AcceptOffer(requesterAlice.ID, offer.ID)
	s.NoError(err)

	_, err = store.CompleteRequest(requesterAlice.ID, request.ID, 0)
	s.Equal(ErrInvalidScore, err)

	_, err = store.CompleteRequest(requesterAlice.ID, request.ID, 6)
	s.Equal(ErrInvalidScore, err)

	// the failed scores must not have completed the request
	updated, err := store.GetRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestAssigned, updated.Status)
}

func (s *EngagementTestSuite) TestRateRequester() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request := s.mustCreateRequest(store, requesterAlice)
	offer := s.mustCreateOffer(store, helperBadr, request.ID)

	_, _, err := store.AcceptOffer(requesterAlice.ID, offer.ID)
	s.NoError(err)

	// rating the requester is only possible after completion
	_, err = store.RateRequester(helperBadr.ID, request.ID, 4)
	s.Equal(ErrRequestNotCompleted, err)

	_, err = store.CompleteRequest(requesterAlice.ID, request.ID, 5)
	s.NoError(err)

	_, err = store.RateRequester(helperChafik.ID, request.ID, 4)
	s.Equal(ErrNotAssignedHelper, err)

	rating, err := store.RateRequester(helperBadr.ID, request.ID, 4)
	s.NoError(err)
	s.Equal(requesterAlice.ID, rating.RatedID)
	s.Equal(schema.RaterRoleHelper, rating.RaterRole)

	_, err = store.RateRequester(helperBadr.ID, request.ID, 3)
	s.Equal(ErrAlreadyRated, err)
}

func (s *EngagementTestSuite) TestCreateOfferGuards() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	request := s.mustCreateRequest(store, requesterAlice)

	_, err := store.CreateOffer(requesterAlice, request.ID, "me myself")
	s.Equal(ErrOwnRequest, err)

	offer := s.mustCreateOffer(store, helperBadr, request.ID)
	_, _, err = store.AcceptOffer(requesterAlice.ID, offer.ID)
	s.NoError(err)

	_, err = store.CreateOffer(helperChafik, request.ID, "too late")
	s.Equal(ErrRequestClosed, err)
}

func TestEngagementTestSuite(t *testing.T) {
	suite.Run(t, NewEngagementTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-engagement"))
}
