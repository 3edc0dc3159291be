package schema

import (
	"time"
)

const (
	ChatCollection    = "chats"
	MessageCollection = "messages"
)

// ChatStartedMessage is the placeholder last message written when a
// conversation is first created on offer acceptance.
const ChatStartedMessage = "Chat started"

// Chat - a two-party conversation bound to one accepted offer. A
// participant may remove themselves from `participants` (soft-leave)
// without the message history going away; the whole document is
// hard-deleted once the engagement is rated.
type Chat struct {
	ID                   string         `bson:"_id" json:"id"`
	RequestID            string         `bson:"requestId" json:"requestId"`
	RequesterID          string         `bson:"requesterId" json:"requesterId"`
	RequesterName        string         `bson:"requesterName" json:"requesterName"`
	RequesterEmail       string         `bson:"requesterEmail" json:"requesterEmail"`
	HelperID             string         `bson:"helperId" json:"helperId"`
	HelperName           string         `bson:"helperName" json:"helperName"`
	HelperEmail          string         `bson:"helperEmail" json:"helperEmail"`
	Participants         []string       `bson:"participants" json:"participants"`
	LastMessage          string         `bson:"lastMessage" json:"lastMessage"`
	LastMessageTimestamp time.Time      `bson:"lastMessageTimestamp" json:"lastMessageTimestamp"`
	UnreadCount          map[string]int `bson:"unreadCount" json:"unreadCount"`
}

// Message - one chat line. The original store kept these in a
// `chats/{id}/messages` subcollection; here the subcollection is
// flattened into a single collection keyed by `chatId`.
type Message struct {
	ID        string    `bson:"_id" json:"id"`
	ChatID    string    `bson:"chatId" json:"chatId"`
	SenderID  string    `bson:"senderId" json:"senderId"`
	Text      string    `bson:"text" json:"text"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// OtherParticipant returns the counterpart of uid in the conversation.
// It falls back to the denormalized ids so a soft-left chat still
// resolves its counterpart.
func (c Chat) OtherParticipant(uid string) string {
	for _, p := range c.Participants {
		if p != uid {
			return p
		}
	}
	if uid == c.RequesterID {
		return c.HelperID
	}
	return c.RequesterID
}

// HasParticipant reports whether uid is currently in the live
// participant list.
func (c Chat) HasParticipant(uid string) bool {
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}
