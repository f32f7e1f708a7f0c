package notification

import (
	"time"

	"github.com/katatrina/fcm-relay/internal/fcm"
	"github.com/katatrina/fcm-relay/internal/token"
)

// NotificationService relays one notification per call: mint a token, build the message, send it.
type NotificationService struct {
	tokenSource token.Source
	dispatcher  fcm.Dispatcher
	options     MessageOptions
	now         func() time.Time
}

func NewNotificationService(tokenSource token.Source, dispatcher fcm.Dispatcher, options MessageOptions) *NotificationService {
	return &NotificationService{
		tokenSource: tokenSource,
		dispatcher:  dispatcher,
		options:     options,
		now:         time.Now,
	}
}
