package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/katatrina/eapi-connector/internal/csob"
	"github.com/katatrina/eapi-connector/internal/util"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router  *gin.Engine
	config  *util.Config
	gateway csob.Gateway
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config *util.Config, gateway csob.Gateway) *Server {
	server := &Server{
		config:  config,
		gateway: gateway,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), loggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", requestIDHeaderKey},
		ExposeHeaders:    []string{requestIDHeaderKey},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	paymentGroup := v1.Group("/payments")
	{
		paymentGroup.POST("", server.createPayment)
		paymentGroup.GET(":payID", server.getPaymentStatus)
		paymentGroup.GET(":payID/process", server.processPayment)
		paymentGroup.PATCH(":payID/close", server.closePayment)
		paymentGroup.PATCH(":payID/reverse", server.reversePayment)
		paymentGroup.PATCH(":payID/refund", server.refundPayment)
		paymentGroup.POST(":payID/oneclick", server.createOneclickPayment)
		paymentGroup.PATCH(":payID/oneclick/start", server.startOneclickPayment)
	}

	// The gateway sends the customer back here with either method
	gatewayGroup := v1.Group("/gateway")
	{
		gatewayGroup.GET("return", server.handlePaymentReturn)
		gatewayGroup.POST("return", server.handlePaymentReturn)
	}

	v1.GET("/echo", server.echo)
	v1.GET("/customers/:customerID", server.getCustomerInfo)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// Handler exposes the router, mainly for tests.
func (server *Server) Handler() http.Handler {
	return server.router
}
