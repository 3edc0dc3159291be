package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/um6p-sci/solidarity-api/background"
	"github.com/um6p-sci/solidarity-api/feed"
	"github.com/um6p-sci/solidarity-api/logmodule"
	"github.com/um6p-sci/solidarity-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.MongoStore

	// live feed hub
	hub *feed.Hub

	// notification fan-out enqueuer
	notifier background.Notifier

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	notifier background.Notifier,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         mongoStore,
		hub:           feed.NewHub(mongoStore),
		notifier:      notifier,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/signup", s.signup)
		authRoute.POST("/login", s.login)
		authRoute.POST("/verify", s.verifyEmail)
		authRoute.POST("/resend-verification", s.resendVerification)
	}

	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateProfile)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listOpenRequests)
		requestRoute.GET("/mine", s.listOwnRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID", s.updateRequest)
		requestRoute.DELETE("/:requestID", s.deleteRequest)
		requestRoute.GET("/:requestID/offers", s.listRequestOffers)
		requestRoute.POST("/:requestID/complete", s.completeRequest)
	}

	offerRoute := apiRoute.Group("/offers")
	{
		offerRoute.POST("", s.createOffer)
		offerRoute.POST("/:offerID/accept", s.acceptOffer)
		offerRoute.POST("/:offerID/decline", s.declineOffer)
	}

	chatRoute := apiRoute.Group("/chats")
	{
		chatRoute.GET("", s.listChats)
		chatRoute.GET("/:chatID/messages", s.listChatMessages)
		chatRoute.POST("/:chatID/messages", s.sendChatMessage)
		chatRoute.POST("/:chatID/read", s.markChatRead)
		chatRoute.POST("/:chatID/leave", s.leaveChat)
		chatRoute.POST("/:chatID/revive", s.reviveChat)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.POST("/:notificationID/read", s.markNotificationRead)
		notificationRoute.POST("/rating-prompt", s.ratingPrompt)
	}

	ratingRoute := apiRoute.Group("/ratings")
	{
		ratingRoute.POST("", s.rateRequester)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.adminOnly())
	{
		adminRoute.GET("/dashboard", s.adminDashboard)
		adminRoute.PATCH("/users/:userID/status", s.adminSetUserStatus)
	}

	wsRoute := r.Group("/ws")
	wsRoute.Use(logmodule.Ginrus("Feed"))
	wsRoute.Use(s.authMiddleware())
	wsRoute.Use(s.recognizeAccountMiddleware())
	{
		wsRoute.GET("/feed", s.serveFeed)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

// abortWithStoreError translates a named store error into its HTTP
// status and wire error code.
func abortWithStoreError(c *gin.Context, err error) {
	status, response := storeErrorResponse(err)
	if status == http.StatusInternalServerError {
		log.Error(err)
	}
	abortWithEncoding(c, status, response, err)
}
