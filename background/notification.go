package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/um6p-sci/solidarity-api/schema"
	"github.com/um6p-sci/solidarity-api/utils"
)

const (
	TaskNotifyOfferReceived  = "notify_offer_received"
	TaskNotifyOfferAccepted  = "notify_offer_accepted"
	TaskNotifyOfferDeclined  = "notify_offer_declined"
	TaskNotifyRatingReceived = "notify_rating_received"
)

// localizeNotification renders the title/message pair for a
// notification kind in the configured language.
func localizeNotification(kind schema.NotificationType, data map[string]interface{}) (string, string, error) {
	loc := utils.NewLocalizer(viper.GetString("i18n.default_language"))

	title, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("notification.%s.title", kind),
	})
	if err != nil {
		return "", "", err
	}

	message, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    fmt.Sprintf("notification.%s.message", kind),
		TemplateData: data,
	})
	if err != nil {
		return "", "", err
	}

	return title, message, nil
}

// createNotification writes the notification document. Failures are
// logged and swallowed: the side channel is advisory and must never
// surface back into the transition that enqueued it.
func (m *BackgroundManager) createNotification(kind schema.NotificationType, recipientID, requestID string, data map[string]interface{}) error {
	logger := log.WithField("prefix", "background").
		WithField("type", kind).
		WithField("recipient", recipientID)

	title, message, err := localizeNotification(kind, data)
	if err != nil {
		logger.WithError(err).Error("fail to localize notification")
		return nil
	}

	if _, err := m.store.CreateNotification(schema.Notification{
		RecipientID: recipientID,
		Type:        kind,
		Title:       title,
		Message:     message,
		RequestID:   requestID,
	}); err != nil {
		logger.WithError(err).Error("fail to create notification")
	}

	return nil
}

// NotifyOfferReceived tells a request owner that a helper stepped up.
func (m *BackgroundManager) NotifyOfferReceived(recipientID, requestID, helperName, category string) error {
	if helperName == "" {
		helperName = "A student"
	}
	return m.createNotification(schema.NotificationOfferReceived, recipientID, requestID, map[string]interface{}{
		"HelperName": helperName,
		"Category":   category,
	})
}

// NotifyOfferAccepted tells a helper their offer was accepted and
// shares the requester's contact email.
func (m *BackgroundManager) NotifyOfferAccepted(recipientID, requestID, category, specificDetail, contactEmail string) error {
	subject := category
	if specificDetail != "" {
		subject = fmt.Sprintf("%s: %s", category, specificDetail)
	}
	return m.createNotification(schema.NotificationOfferAccepted, recipientID, requestID, map[string]interface{}{
		"Subject":      subject,
		"ContactEmail": contactEmail,
	})
}

// NotifyOfferDeclined tells the one declined helper; other pending
// offers are unaffected.
func (m *BackgroundManager) NotifyOfferDeclined(recipientID, requestID string) error {
	return m.createNotification(schema.NotificationOfferDeclined, recipientID, requestID, nil)
}

// NotifyRatingReceived tells either party a rating landed for them.
func (m *BackgroundManager) NotifyRatingReceived(recipientID, requestID string) error {
	return m.createNotification(schema.NotificationRatingReceived, recipientID, requestID, nil)
}
