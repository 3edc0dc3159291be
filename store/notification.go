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

// NotificationFeedLimit caps the recent-notification list a recipient
// sees.
const NotificationFeedLimit = 20

var (
	ErrNotificationNotFound = fmt.Errorf("the notification does not exist")
)

// NotificationStore persists the advisory notification side channel.
type NotificationStore interface {
	CreateNotification(notification schema.Notification) (*schema.Notification, error)
	ListRecentNotifications(recipientID string) ([]schema.Notification, int, error)
	MarkNotificationRead(recipientID, id string) error
	NextRatingPrompt(recipientID string) (*schema.Notification, error)
}

// CreateNotification inserts an unread notification document.
func (m *mongoDB) CreateNotification(notification schema.Notification) (*schema.Notification, error) {
	if !notification.Type.IsValid() {
		return nil, schema.ErrUnknownNotificationType
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	notification.ID = uuid.New().String()
	notification.Read = false
	notification.CreatedAt = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)
	if _, err := c.InsertOne(ctx, notification); err != nil {
		return nil, err
	}

	return &notification, nil
}

// ListRecentNotifications returns the recipient's newest
// NotificationFeedLimit notifications plus the unread count over the
// whole set. The by-recipient fetch is unfiltered and sorted in
// process, so no composite index is required.
func (m *mongoDB) ListRecentNotifications(recipientID string) ([]schema.Notification, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)
	cursor, err := c.Find(ctx, bson.M{"recipientId": recipientID})
	if err != nil {
		return nil, 0, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	if len(notifications) > NotificationFeedLimit {
		notifications = notifications[:NotificationFeedLimit]
	}

	return notifications, unread, nil
}

// MarkNotificationRead flips read to true. Marking an already-read
// notification again is a no-op, not an error.
func (m *mongoDB) MarkNotificationRead(recipientID, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id, "recipientId": recipientID},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// NextRatingPrompt picks the recipient's newest unread rating_received
// notification, re-fetches it to dodge a double-trigger race and marks
// it read before handing it back, so the prompt surfaces at most once
// per notification. Best-effort de-duplication, not a delivery lock.
func (m *mongoDB) NextRatingPrompt(recipientID string) (*schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	var candidate schema.Notification
	err := c.FindOne(ctx, bson.M{
		"recipientId": recipientID,
		"type":        schema.NotificationRatingReceived,
		"read":        false,
	}).Decode(&candidate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	// re-fetch before surfacing: another session may have consumed it
	var fresh schema.Notification
	if err := c.FindOne(ctx, bson.M{"_id": candidate.ID, "read": false}).Decode(&fresh); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	if err := m.MarkNotificationRead(recipientID, fresh.ID); err != nil {
		return nil, err
	}
	fresh.Read = true

	return &fresh, nil
}
