// Package routing wires the middleware stack and the API routes.
package routing

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cardlet-server/internal/handlers"
	"cardlet-server/internal/managers"
	"cardlet-server/internal/middleware"
	"cardlet-server/internal/schemas"
	"cardlet-server/internal/utils"
)

func InitRouter(storeMgr managers.StoreMgr, mailMgr managers.MailMgr, jwtMgr managers.JWTMgr) *gin.Engine {
	// Initialize router with logging and recovery middleware
	router := gin.New()
	// Initialize middleware
	setupCommonMiddleware(router)
	// Setup routes
	setupRoutes(router, storeMgr, mailMgr, jwtMgr)

	return router
}

func setupCommonMiddleware(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept, Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func setupRoutes(router *gin.Engine, storeMgr managers.StoreMgr, mailMgr managers.MailMgr, jwtMgr managers.JWTMgr) {
	// Set up version route
	router.GET("/", func(c *gin.Context) {
		apiVersion := os.Getenv("API_VERSION")
		if apiVersion == "" {
			apiVersion = "main:latest"
		}
		metadata := &schemas.MetadataDTO{
			ApiVersion: apiVersion,
			ApiName:    "Cardlet Server",
		}
		utils.WriteAndLogResponse(c, metadata, http.StatusOK)
	})

	// Set up health route. All state is in memory, so being able to answer
	// is the whole health check.
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Set up API routes
	apiRouter := router.Group("/api")
	{
		userHdl := handlers.NewUserHandler(&storeMgr, &jwtMgr)
		cardHdl := handlers.NewCardHandler(&storeMgr)
		analyticsHdl := handlers.NewAnalyticsHandler(&storeMgr, &mailMgr)

		apiRouter.POST("/register", userHdl.RegisterUser)
		apiRouter.POST("/login", userHdl.LoginUser)
		apiRouter.GET("/protected", jwtMgr.JWTMiddleware(), userHdl.GetProtectedResource)
		apiRouter.GET("/templates", cardHdl.ListTemplates)

		cardRouter := apiRouter.Group("/cards")
		cardRoutes(cardRouter, cardHdl, analyticsHdl, jwtMgr)
	}
}

func cardRoutes(cardRouter *gin.RouterGroup, cardHdl handlers.CardHdl, analyticsHdl handlers.AnalyticsHdl, jwtMgr managers.JWTMgr) {
	// The slug-addressed engagement routes are public by design and must be
	// registered before the JWT middleware applies to the group.
	cardRouter.GET("/public/:"+utils.CardSlugKey, cardHdl.GetPublicCard)
	cardRouter.POST("/:"+utils.CardSlugKey+"/view", analyticsHdl.RecordView)
	cardRouter.POST("/:"+utils.CardSlugKey+"/message", analyticsHdl.RecordMessage)
	cardRouter.POST("/:"+utils.CardSlugKey+"/book-appointment", analyticsHdl.RecordAppointment)
	cardRouter.POST("/:"+utils.CardSlugKey+"/click-link", analyticsHdl.RecordLinkClick)

	// The following routes require the user to be authenticated
	cardRouter.Use(jwtMgr.JWTMiddleware())
	cardRouter.POST("", cardHdl.CreateCard)
	cardRouter.GET("", cardHdl.ListCards)
	cardRouter.GET("/:"+utils.CardIdKey, cardHdl.GetCard)
	cardRouter.PUT("/:"+utils.CardIdKey, cardHdl.UpdateCard)
	cardRouter.DELETE("/:"+utils.CardIdKey, cardHdl.DeleteCard)
	cardRouter.GET("/:"+utils.CardIdKey+"/analytics/visitors", analyticsHdl.GetVisitorStats)
	cardRouter.GET("/:"+utils.CardIdKey+"/analytics/messages", analyticsHdl.GetMessages)
	cardRouter.GET("/:"+utils.CardIdKey+"/analytics/appointments", analyticsHdl.GetAppointments)
	cardRouter.GET("/:"+utils.CardIdKey+"/analytics/link_clicks", analyticsHdl.GetLinkClicks)
}
