package notification

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/katatrina/fcm-relay/internal/token"
	"github.com/katatrina/fcm-relay/internal/util"
)

// SendNotification validates req, then exchanges the credentials for an access token and
// dispatches the message, strictly in that order. Errors are *ValidationError, *AuthError or *DispatchError.
func (s *NotificationService) SendNotification(ctx context.Context, req Request) (*Result, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	creds := token.Credentials{
		PrivateKey:  NormalizePrivateKey(req.PrivateKey),
		ClientEmail: req.ClientEmail,
	}

	accessToken, err := s.tokenSource.AccessToken(ctx, creds)
	if err != nil {
		log.Error().Err(err).Str("client_email", req.ClientEmail).Msg("failed to generate google access token")
		return nil, &AuthError{Err: err}
	}

	message := BuildMessage(req, s.options, s.now())

	res, err := s.dispatcher.Send(ctx, req.ProjectID, accessToken, message)
	if err != nil {
		dispatchErr := newDispatchError(err)
		log.Error().Err(err).Str("project_id", req.ProjectID).Msg("failed to send FCM")
		return nil, dispatchErr
	}

	log.Info().
		Str("project_id", req.ProjectID).
		Str("fcm_token", util.MaskSecret(req.FCMToken, 6)).
		Str("type", message.Data["TYPE"]).
		Str("sub_type", message.Data["SUBTYPE"]).
		Msg("notification sent successfully")

	return &Result{FirebaseResponse: res.Body}, nil
}
