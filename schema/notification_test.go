package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationTypeIsValid(t *testing.T) {
	for _, kind := range NotificationTypes {
		assert.True(t, kind.IsValid(), "kind %q should be valid", kind)
	}

	assert.False(t, NotificationType("").IsValid())
	assert.False(t, NotificationType("chat_message").IsValid())
}

func TestNotificationHandlerCoversEveryKind(t *testing.T) {
	seen := map[NotificationType]int{}

	record := func(n Notification) error {
		seen[n.Type]++
		return nil
	}

	handler := NotificationHandler{
		OfferReceived:  record,
		OfferAccepted:  record,
		OfferDeclined:  record,
		RatingReceived: record,
	}

	for _, kind := range NotificationTypes {
		assert.NoError(t, handler.Handle(Notification{Type: kind}))
	}

	for _, kind := range NotificationTypes {
		assert.Equal(t, 1, seen[kind], "kind %q should be routed once", kind)
	}

	err := handler.Handle(Notification{Type: "push_broadcast"})
	assert.Equal(t, ErrUnknownNotificationType, err)
}
