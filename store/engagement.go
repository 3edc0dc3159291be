package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/um6p-sci/solidarity-api/schema"
)

var (
	ErrOfferNotPending     = fmt.Errorf("the offer is no longer pending")
	ErrRequestNotOpen      = fmt.Errorf("the request has already been assigned")
	ErrRequestNotAssigned  = fmt.Errorf("the request is not assigned to a helper")
	ErrRequestNotCompleted = fmt.Errorf("the request has not been completed yet")
	ErrNotAssignedHelper   = fmt.Errorf("only the assigned helper may do this")
	ErrInvalidScore        = fmt.Errorf("rating must be an integer between 1 and 5")
	ErrAlreadyRated        = fmt.Errorf("this engagement has already been rated")
)

// Engagement binds a request, its offers, the conversation and the two
// closing ratings into one transition sequence. Every transition is a
// series of independent writes; the leading write carries its
// preconditions in the filter so a lost race fails cleanly instead of
// double-assigning.
type Engagement interface {
	AcceptOffer(ownerID, offerID string) (*schema.Offer, *schema.Chat, error)
	DeclineOffer(ownerID, offerID string) (*schema.Offer, error)
	CompleteRequest(ownerID, requestID string, score int) (*schema.Rating, error)
	RateRequester(helperID, requestID string, score int) (*schema.Rating, error)
}

// AcceptOffer runs the open→assigned transition: the request is
// assigned first under a compare-and-set on its open status, then the
// offer flips to accepted, then the conversation is created or revived.
// The caller is responsible for the advisory offer_accepted
// notification.
func (m *mongoDB) AcceptOffer(ownerID, offerID string) (*schema.Offer, *schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	offer, err := m.GetOffer(offerID)
	if err != nil {
		return nil, nil, err
	}
	if offer.RequestOwnerID != ownerID {
		return nil, nil, ErrNotRequestOwner
	}
	if offer.Status != schema.OfferPending {
		return nil, nil, ErrOfferNotPending
	}

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	err = requests.FindOneAndUpdate(ctx,
		bson.M{
			"_id":    offer.RequestID,
			"userId": ownerID,
			"status": schema.RequestOpen,
		},
		bson.M{"$set": bson.M{
			"status":     schema.RequestAssigned,
			"assignedTo": offer.HelperID,
			"updatedAt":  time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if _, err := m.GetRequest(offer.RequestID); err != nil {
				return nil, nil, err
			}
			return nil, nil, ErrRequestNotOpen
		}
		return nil, nil, err
	}

	offers := m.client.Database(m.database).Collection(schema.OfferCollection)
	result, err := offers.UpdateOne(ctx,
		bson.M{"_id": offerID, "status": schema.OfferPending},
		bson.M{"$set": bson.M{"status": schema.OfferAccepted}})
	if err != nil {
		return nil, nil, err
	}
	if result.MatchedCount == 0 {
		// the request is assigned but the offer slipped away; there is
		// no rollback of prior writes in this design
		log.WithField("prefix", mongoLogPrefix).
			WithField("offer", offerID).
			Warn("offer no longer pending after request was assigned")
		return nil, nil, ErrOfferNotPending
	}
	offer.Status = schema.OfferAccepted

	chat, err := m.ensureChat(ctx, request, *offer)
	if err != nil {
		return nil, nil, err
	}

	return offer, chat, nil
}

// ensureChat reuses the conversation for (requestId, helperId) when one
// exists, reviving the requester into the participant list if needed,
// and creates it otherwise.
func (m *mongoDB) ensureChat(ctx context.Context, request schema.Request, offer schema.Offer) (*schema.Chat, error) {
	chats := m.client.Database(m.database).Collection(schema.ChatCollection)

	var chat schema.Chat
	err := chats.FindOne(ctx, bson.M{
		"requestId":    request.ID,
		"participants": offer.HelperID,
	}).Decode(&chat)
	if err == nil {
		if !chat.HasParticipant(request.UserID) {
			if _, err := chats.UpdateOne(ctx,
				bson.M{"_id": chat.ID},
				bson.M{"$addToSet": bson.M{"participants": request.UserID}}); err != nil {
				return nil, err
			}
			chat.Participants = append(chat.Participants, request.UserID)
		}
		return &chat, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	chat = schema.Chat{
		ID:                   uuid.New().String(),
		RequestID:            request.ID,
		RequesterID:          request.UserID,
		RequesterName:        request.UserName,
		RequesterEmail:       request.UserEmail,
		HelperID:             offer.HelperID,
		HelperName:           offer.HelperName,
		HelperEmail:          offer.HelperEmail,
		Participants:         []string{request.UserID, offer.HelperID},
		LastMessage:          schema.ChatStartedMessage,
		LastMessageTimestamp: time.Now().UTC(),
		UnreadCount: map[string]int{
			request.UserID: 0,
			offer.HelperID: 0,
		},
	}
	if _, err := chats.InsertOne(ctx, chat); err != nil {
		return nil, err
	}

	return &chat, nil
}

// DeclineOffer flips a single pending offer to declined. The request
// and its other offers are untouched.
func (m *mongoDB) DeclineOffer(ownerID, offerID string) (*schema.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	offers := m.client.Database(m.database).Collection(schema.OfferCollection)
	result, err := offers.UpdateOne(ctx,
		bson.M{
			"_id":            offerID,
			"requestOwnerId": ownerID,
			"status":         schema.OfferPending,
		},
		bson.M{"$set": bson.M{"status": schema.OfferDeclined}})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		offer, err := m.GetOffer(offerID)
		if err != nil {
			return nil, err
		}
		if offer.RequestOwnerID != ownerID {
			return nil, ErrNotRequestOwner
		}
		return nil, ErrOfferNotPending
	}

	offer, err := m.GetOffer(offerID)
	if err != nil {
		return nil, err
	}

	return offer, nil
}

// CompleteRequest runs the assigned→completed transition from the
// requester side: the status flips under a compare-and-set, the
// requester's rating of the helper is recorded, and every conversation
// for the request is hard-deleted together with its messages. The
// rating_received notification is the caller's advisory follow-up.
func (m *mongoDB) CompleteRequest(ownerID, requestID string, score int) (*schema.Rating, error) {
	if !schema.IsValidScore(score) {
		return nil, ErrInvalidScore
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	err := requests.FindOneAndUpdate(ctx,
		bson.M{
			"_id":    requestID,
			"userId": ownerID,
			"status": schema.RequestAssigned,
		},
		bson.M{"$set": bson.M{
			"status":    schema.RequestCompleted,
			"updatedAt": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			existing, err := m.GetRequest(requestID)
			if err != nil {
				return nil, err
			}
			if existing.UserID != ownerID {
				return nil, ErrNotRequestOwner
			}
			return nil, ErrRequestNotAssigned
		}
		return nil, err
	}

	rating, err := m.insertRating(ctx, schema.Rating{
		RequestID:   requestID,
		HelperID:    request.AssignedTo,
		RequesterID: ownerID,
		RaterID:     ownerID,
		RatedID:     request.AssignedTo,
		RaterRole:   schema.RaterRoleRequester,
		RatedRole:   schema.RaterRoleHelper,
		Rating:      score,
	})
	if err != nil {
		return nil, err
	}

	if err := m.deleteChatsByRequest(ctx, requestID); err != nil {
		// completion already happened; chat cleanup failure is logged,
		// not propagated back into the transition
		log.WithField("prefix", mongoLogPrefix).
			WithField("request", requestID).
			WithError(err).Error("fail to delete conversations of completed request")
	}

	return rating, nil
}

// RateRequester records the helper's reciprocal rating after a
// completed engagement. It never touches the request status and never
// re-deletes the already-deleted conversation.
func (m *mongoDB) RateRequester(helperID, requestID string, score int) (*schema.Rating, error) {
	if !schema.IsValidScore(score) {
		return nil, ErrInvalidScore
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != schema.RequestCompleted {
		return nil, ErrRequestNotCompleted
	}
	if request.AssignedTo != helperID {
		return nil, ErrNotAssignedHelper
	}

	return m.insertRating(ctx, schema.Rating{
		RequestID:   requestID,
		HelperID:    helperID,
		RequesterID: request.UserID,
		RaterID:     helperID,
		RatedID:     request.UserID,
		RaterRole:   schema.RaterRoleHelper,
		RatedRole:   schema.RaterRoleRequester,
		Rating:      score,
	})
}

func (m *mongoDB) insertRating(ctx context.Context, rating schema.Rating) (*schema.Rating, error) {
	rating.ID = uuid.New().String()
	rating.CreatedAt = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.RatingCollection)
	if _, err := c.InsertOne(ctx, rating); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	return &rating, nil
}
