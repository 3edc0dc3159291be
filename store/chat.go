package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/um6p-sci/solidarity-api/schema"
)

var (
	ErrChatNotFound       = fmt.Errorf("the conversation does not exist")
	ErrNotChatParticipant = fmt.Errorf("you are not part of this conversation")
	ErrEmptyMessage       = fmt.Errorf("a message cannot be empty")
)

// ChatStore persists conversations and their messages.
type ChatStore interface {
	GetChat(id string) (*schema.Chat, error)
	ListChatsByParticipant(uid string) ([]schema.Chat, error)
	SendMessage(chatID, senderID, text string) (*schema.Message, error)
	ListMessages(chatID, uid string) ([]schema.Message, error)
	MarkChatRead(chatID, uid string) error
	LeaveChat(chatID, uid string) error
	ReviveChat(chatID, uid string) (*schema.Chat, error)
	ListChatsByRequest(requestID string) ([]schema.Chat, error)
}

func (m *mongoDB) GetChat(id string) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatCollection)

	var chat schema.Chat
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	return &chat, nil
}

// ListChatsByParticipant returns the viewer's live conversations,
// most recent message first.
func (m *mongoDB) ListChatsByParticipant(uid string) ([]schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatCollection)
	cursor, err := c.Find(ctx, bson.M{"participants": uid})
	if err != nil {
		return nil, err
	}

	chats := make([]schema.Chat, 0)
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}

	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].LastMessageTimestamp.After(chats[j].LastMessageTimestamp)
	})

	return chats, nil
}

// SendMessage appends a message and bumps the chat metadata: last
// message, its timestamp and the counterpart's unread counter.
func (m *mongoDB) SendMessage(chatID, senderID, text string) (*schema.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	chat, err := m.GetChat(chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(senderID) {
		return nil, ErrNotChatParticipant
	}

	message := schema.Message{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		SenderID:  senderID,
		Text:      text,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	messages := m.client.Database(m.database).Collection(schema.MessageCollection)
	if _, err := messages.InsertOne(ctx, message); err != nil {
		return nil, err
	}

	other := chat.OtherParticipant(senderID)
	chats := m.client.Database(m.database).Collection(schema.ChatCollection)
	if _, err := chats.UpdateOne(ctx,
		bson.M{"_id": chatID},
		bson.M{
			"$set": bson.M{
				"lastMessage":          text,
				"lastMessageTimestamp": message.CreatedAt,
			},
			"$inc": bson.M{"unreadCount." + other: 1},
		}); err != nil {
		return nil, err
	}

	return &message, nil
}

// ListMessages returns the conversation history oldest first.
func (m *mongoDB) ListMessages(chatID, uid string) ([]schema.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	chat, err := m.GetChat(chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(uid) {
		return nil, ErrNotChatParticipant
	}

	c := m.client.Database(m.database).Collection(schema.MessageCollection)
	cursor, err := c.Find(ctx, bson.M{"chatId": chatID})
	if err != nil {
		return nil, err
	}

	messages := make([]schema.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

// MarkChatRead resets the viewer's unread counter and flags the
// counterpart's messages read. Re-running it is a no-op.
func (m *mongoDB) MarkChatRead(chatID, uid string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	chat, err := m.GetChat(chatID)
	if err != nil {
		return err
	}
	if !chat.HasParticipant(uid) {
		return ErrNotChatParticipant
	}

	chats := m.client.Database(m.database).Collection(schema.ChatCollection)
	if _, err := chats.UpdateOne(ctx,
		bson.M{"_id": chatID},
		bson.M{"$set": bson.M{"unreadCount." + uid: 0}}); err != nil {
		return err
	}

	messages := m.client.Database(m.database).Collection(schema.MessageCollection)
	_, err = messages.UpdateMany(ctx,
		bson.M{"chatId": chatID, "senderId": bson.M{"$ne": uid}, "read": false},
		bson.M{"$set": bson.M{"read": true}})

	return err
}

// LeaveChat removes the viewer from the participant list without
// touching the messages (soft-leave).
func (m *mongoDB) LeaveChat(chatID, uid string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": chatID, "participants": uid},
		bson.M{"$pull": bson.M{"participants": uid}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if _, err := m.GetChat(chatID); err != nil {
			return err
		}
		return ErrNotChatParticipant
	}

	return nil
}

// ReviveChat re-adds a soft-left party to the participant list. Only
// the two original parties may come back.
func (m *mongoDB) ReviveChat(chatID, uid string) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	chat, err := m.GetChat(chatID)
	if err != nil {
		return nil, err
	}
	if uid != chat.RequesterID && uid != chat.HelperID {
		return nil, ErrNotChatParticipant
	}

	if !chat.HasParticipant(uid) {
		c := m.client.Database(m.database).Collection(schema.ChatCollection)
		if _, err := c.UpdateOne(ctx,
			bson.M{"_id": chatID},
			bson.M{"$addToSet": bson.M{"participants": uid}}); err != nil {
			return nil, err
		}
		chat.Participants = append(chat.Participants, uid)
	}

	return chat, nil
}

// ListChatsByRequest returns every conversation bound to a request.
func (m *mongoDB) ListChatsByRequest(requestID string) ([]schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatCollection)
	cursor, err := c.Find(ctx, bson.M{"requestId": requestID})
	if err != nil {
		return nil, err
	}

	chats := make([]schema.Chat, 0)
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}

	return chats, nil
}

// deleteChatsByRequest hard-deletes every conversation of a request and
// the flattened message subcollection with it.
func (m *mongoDB) deleteChatsByRequest(ctx context.Context, requestID string) error {
	chats, err := m.ListChatsByRequest(requestID)
	if err != nil {
		return err
	}
	if len(chats) == 0 {
		return nil
	}

	ids := make([]string, 0, len(chats))
	for _, chat := range chats {
		ids = append(ids, chat.ID)
	}

	messages := m.client.Database(m.database).Collection(schema.MessageCollection)
	if _, err := messages.DeleteMany(ctx, bson.M{"chatId": bson.M{"$in": ids}}); err != nil {
		return err
	}

	c := m.client.Database(m.database).Collection(schema.ChatCollection)
	_, err = c.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})

	return err
}
