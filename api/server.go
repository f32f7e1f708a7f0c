package api

import (
	"context"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/katatrina/fcm-relay/internal/notification"
	"github.com/katatrina/fcm-relay/internal/util"
)

type notificationSender interface {
	SendNotification(ctx context.Context, req notification.Request) (*notification.Result, error)
}

type Server struct {
	router              *gin.Engine
	config              *util.Config
	notificationService notificationSender
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config *util.Config, notificationService notificationSender) *Server {
	server := &Server{
		config:              config,
		notificationService: notificationService,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), recoverer())
	router.Use(cors.New(server.corsConfig()))

	// The relay was historically exposed as GET; POST is the preferred method for new callers.
	router.GET("/", server.sendNotification)
	router.POST("/", server.sendNotification)

	router.GET("/healthz", server.healthCheck)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

func (server *Server) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{
			"Origin", "Content-Length", "Content-Type",
			headerFCMToken, headerPrivateKey, headerClientEmail, headerProjectID,
			headerType, headerSubType, requestIDHeaderKey,
		},
		ExposeHeaders: []string{requestIDHeaderKey},
	}

	if len(server.config.AllowedOrigins) == 0 || slices.Contains(server.config.AllowedOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = server.config.AllowedOrigins
		config.AllowCredentials = true
	}

	return config
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
