package routes

import (
	"agencyops/internal/adapter/http/handlers"
	"agencyops/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Quotes          *handlers.QuoteHandler
	QuotePayments   *handlers.QuotePaymentHandler
	ServiceRequests *handlers.ServiceRequestHandler
	Leads           *handlers.LeadHandler
	Projects        *handlers.ProjectHandler
	Tasks           *handlers.TaskHandler
	Templates       *handlers.TaskTemplateHandler
	Auth            *handlers.AuthHandler
	Webhooks        *handlers.WebhookHandler
	Reminders       *handlers.ReminderHandler
	Functions       *handlers.FunctionsHandler
}

// NewRouter builds the gin engine with every route group under /v1.
func NewRouter(h Handlers, auth middleware.SessionParser, limiter *middleware.IPRateLimiter, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1.Group(PathPublic, limiter.Middleware()), h)
	addAdminRoutes(v1.Group(PathAdmin, middleware.RequireSession(auth)), h)
	addWebhookRoutes(v1.Group(PathWebhooks), h.Webhooks)
	addAuthRoutes(v1.Group(PathAuth), h.Auth, auth, limiter)

	v1.POST(PathFunctions+"/:name", limiter.Middleware(), middleware.LoadSession(auth), h.Functions.Invoke)
	return router
}
