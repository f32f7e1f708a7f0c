package notification

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalMessage(t *testing.T, req Request, opts MessageOptions, now time.Time) map[string]any {
	t.Helper()

	data, err := json.Marshal(map[string]any{"message": BuildMessage(req, opts, now)})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	message, ok := body["message"].(map[string]any)
	require.True(t, ok)
	return message
}

func TestBuildMessage(t *testing.T) {
	now := time.Date(2024, 1, 1, 20, 30, 15, 0, time.UTC)

	t.Run("computed date time and defaults", func(t *testing.T) {
		message := marshalMessage(t, Request{FCMToken: "abc"}, MessageOptions{DateTimeMode: DateTimeComputed}, now)

		assert.Equal(t, "abc", message["token"])
		assert.Equal(t, map[string]any{
			"title": "Transaction Notification",
			"body":  "You have a successful transaction.",
		}, message["notification"])
		assert.Equal(t, map[string]any{
			"TYPE":      "NONE",
			"SUBTYPE":   "NONE",
			"REFERENCE": "test",
			"WALLET_ID": "1234567890",
			"AMOUNT":    "123",
			"DATE":      "02-01-2024",
			"TIME":      "03:30:15",
		}, message["data"])
		assert.Equal(t, map[string]any{"priority": "high"}, message["android"])
		assert.NotContains(t, message, "apns")
	})
	t.Run("type and sub type are passed through", func(t *testing.T) {
		message := marshalMessage(t, Request{FCMToken: "abc", Type: "DEPOSIT", SubType: "QR"}, MessageOptions{}, now)

		data := message["data"].(map[string]any)
		assert.Equal(t, "DEPOSIT", data["TYPE"])
		assert.Equal(t, "QR", data["SUBTYPE"])
	})
	t.Run("fixed date time with apns block", func(t *testing.T) {
		message := marshalMessage(t, Request{FCMToken: "abc"}, MessageOptions{
			DateTimeMode:     DateTimeFixed,
			IncludeAPNSBlock: true,
		}, now)

		data := message["data"].(map[string]any)
		assert.Equal(t, "01-01-2024", data["DATE"])
		assert.Equal(t, "12:00:00", data["TIME"])

		apns, ok := message["apns"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"apns-priority": "5"}, apns["headers"])
		assert.Equal(t, map[string]any{
			"aps": map[string]any{"content-available": float64(1)},
		}, apns["payload"])
	})
	t.Run("deterministic", func(t *testing.T) {
		req := Request{FCMToken: "abc", Type: "DEPOSIT"}
		assert.Equal(t, BuildMessage(req, MessageOptions{}, now), BuildMessage(req, MessageOptions{}, now))
	})
}
