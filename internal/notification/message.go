package notification

import (
	"time"

	"firebase.google.com/go/v4/messaging"

	"github.com/katatrina/fcm-relay/internal/util"
)

const (
	notificationTitle = "Transaction Notification"
	notificationBody  = "You have a successful transaction."

	defaultCategory = "NONE"
	referenceValue  = "test"
	walletIDValue   = "1234567890"
	amountValue     = "123"
	fixedDate       = "01-01-2024"
	fixedTime       = "12:00:00"

	androidPriorityHigh = "high"
	apnsPriorityHeader  = "apns-priority"
	apnsPriorityLow     = "5"
)

// BuildMessage assembles the FCM message for req. It does no I/O and never fails;
// missing optional fields fall back to defaults.
func BuildMessage(req Request, opts MessageOptions, now time.Time) *messaging.Message {
	date, clock := fixedDate, fixedTime
	if opts.DateTimeMode != DateTimeFixed {
		date = util.FormatTransactionDate(now)
		clock = util.FormatTransactionTime(now)
	}

	message := &messaging.Message{
		Token: req.FCMToken,
		Notification: &messaging.Notification{
			Title: notificationTitle,
			Body:  notificationBody,
		},
		Data: map[string]string{
			"TYPE":      valueOrDefault(req.Type, defaultCategory),
			"SUBTYPE":   valueOrDefault(req.SubType, defaultCategory),
			"REFERENCE": referenceValue,
			"WALLET_ID": walletIDValue,
			"AMOUNT":    amountValue,
			"DATE":      date,
			"TIME":      clock,
		},
		Android: &messaging.AndroidConfig{
			Priority: androidPriorityHigh,
		},
	}

	if opts.IncludeAPNSBlock {
		message.APNS = &messaging.APNSConfig{
			Headers: map[string]string{
				apnsPriorityHeader: apnsPriorityLow,
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					ContentAvailable: true,
				},
			},
		}
	}

	return message
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
