package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katatrina/fcm-relay/internal/notification"
)

var (
	ErrMissingFCMTokenHeader = errors.New("Missing fcmToken header")
	ErrMissingCredentials    = errors.New("Missing Firebase credentials")
	ErrInvalidProjectID      = errors.New("Invalid Firebase project id")
	ErrAccessToken           = errors.New("Failed to generate Google Access Token")
	ErrSendFCM               = errors.New("Failed to send FCM")
	ErrInternalServer        = errors.New("Internal server error")
)

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// notificationErrorResponse maps relay errors onto the public status codes and bodies.
func notificationErrorResponse(err error) (int, gin.H) {
	var (
		validationErr *notification.ValidationError
		authErr       *notification.AuthError
		dispatchErr   *notification.DispatchError
	)

	switch {
	case errors.As(err, &validationErr):
		switch {
		case errors.Is(err, notification.ErrMissingFCMToken):
			return http.StatusBadRequest, errorResponse(ErrMissingFCMTokenHeader)
		case errors.Is(err, notification.ErrMissingCredentials):
			return http.StatusBadRequest, errorResponse(ErrMissingCredentials)
		default:
			return http.StatusBadRequest, errorResponse(ErrInvalidProjectID)
		}
	case errors.As(err, &authErr):
		return http.StatusInternalServerError, errorResponse(ErrAccessToken)
	case errors.As(err, &dispatchErr):
		return http.StatusInternalServerError, gin.H{
			"error":   ErrSendFCM.Error(),
			"details": dispatchErr.Details,
		}
	default:
		return http.StatusInternalServerError, errorResponse(ErrInternalServer)
	}
}
