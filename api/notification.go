package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katatrina/fcm-relay/internal/notification"
)

const (
	headerFCMToken    = "fcmToken"
	headerPrivateKey  = "FIREBASE_PRIVATE"
	headerClientEmail = "FIREBASE_CLIENT_EMAIL"
	headerProjectID   = "FIREBASE_PROJECT_ID"
	headerType        = "type"
	headerSubType     = "subType"
)

type sendNotificationResponse struct {
	Success          bool            `json:"success"`
	FirebaseResponse json.RawMessage `json:"firebaseResponse" swaggertype:"object"`
}

//	@Summary		Send a transaction push notification
//	@Description	Mints a Google access token from the service-account credentials in the headers and sends one FCM v1 message to the device token.
//	@Tags			notifications
//	@Produce		json
//	@Param			fcmToken				header		string	true	"Target device registration token"
//	@Param			FIREBASE_PRIVATE		header		string	true	"Service-account PEM private key, newlines may be escaped as \n"
//	@Param			FIREBASE_CLIENT_EMAIL	header		string	true	"Service-account email"
//	@Param			FIREBASE_PROJECT_ID		header		string	true	"Firebase project id"
//	@Param			type					header		string	false	"Value of data.TYPE, defaults to NONE"
//	@Param			subType					header		string	false	"Value of data.SUBTYPE, defaults to NONE"
//	@Success		200						{object}	sendNotificationResponse
//	@Failure		400						{object}	map[string]string
//	@Failure		500						{object}	map[string]interface{}
//	@Router			/ [get]
//	@Router			/ [post]
func (server *Server) sendNotification(c *gin.Context) {
	req := notification.Request{
		FCMToken:    c.GetHeader(headerFCMToken),
		Type:        c.GetHeader(headerType),
		SubType:     c.GetHeader(headerSubType),
		PrivateKey:  c.GetHeader(headerPrivateKey),
		ClientEmail: c.GetHeader(headerClientEmail),
		ProjectID:   c.GetHeader(headerProjectID),
	}

	result, err := server.notificationService.SendNotification(c.Request.Context(), req)
	if err != nil {
		c.JSON(notificationErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, sendNotificationResponse{
		Success:          true,
		FirebaseResponse: result.FirebaseResponse,
	})
}

//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/healthz [get]
func (server *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
