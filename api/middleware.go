package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	requestIDHeaderKey = "X-Request-ID"
	requestIDKey       = "requestID"
)

// requestLogger tags every request with an id and logs one line when it completes.
// Headers are never logged: they carry service-account keys.
func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeaderKey)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(requestIDKey, requestID)
		ctx.Header(requestIDHeaderKey, requestID)

		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", requestID).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", ctx.ClientIP()).
			Msg("request completed")
	}
}

// recoverer turns a panic into the generic 500 body.
// gin's default recovery dumps request headers, so its writer is discarded.
func recoverer() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(ctx *gin.Context, recovered any) {
		log.Error().
			Str("request_id", ctx.GetString(requestIDKey)).
			Interface("panic", recovered).
			Msg("unexpected error")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
	})
}
