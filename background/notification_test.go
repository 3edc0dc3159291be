package background

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/um6p-sci/solidarity-api/schema"
	"github.com/um6p-sci/solidarity-api/utils"
)

func setupBundle(t *testing.T) {
	t.Helper()
	viper.Set("i18n.dir", "../i18n")
	viper.Set("i18n.default_language", "en")
	utils.InitI18NBundle()
}

func TestLocalizeOfferReceived(t *testing.T) {
	setupBundle(t)

	title, message, err := localizeNotification(schema.NotificationOfferReceived, map[string]interface{}{
		"HelperName": "Badr Alaoui",
		"Category":   "Academic",
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Offer for Help! 🤝", title)
	assert.Contains(t, message, "Badr Alaoui")
	assert.Contains(t, message, "Academic")
}

func TestLocalizeOfferAccepted(t *testing.T) {
	setupBundle(t)

	title, message, err := localizeNotification(schema.NotificationOfferAccepted, map[string]interface{}{
		"Subject":      "Academic: Linear Algebra",
		"ContactEmail": "alice@um6p.ma",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Offer Accepted! 🎉", title)
	assert.Contains(t, message, "Academic: Linear Algebra")
	assert.Contains(t, message, "alice@um6p.ma")
}

func TestLocalizeFrenchFallback(t *testing.T) {
	setupBundle(t)
	viper.Set("i18n.default_language", "fr")
	defer viper.Set("i18n.default_language", "en")

	title, _, err := localizeNotification(schema.NotificationOfferDeclined, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, title)
}

func TestEveryKindHasCopy(t *testing.T) {
	setupBundle(t)

	for _, kind := range schema.NotificationTypes {
		data := map[string]interface{}{
			"HelperName":   "x",
			"Category":     "x",
			"Subject":      "x",
			"ContactEmail": "x",
		}
		title, message, err := localizeNotification(kind, data)
		assert.NoError(t, err, "kind %q should have copy", kind)
		assert.NotEmpty(t, title)
		assert.NotEmpty(t, message)
	}
}
