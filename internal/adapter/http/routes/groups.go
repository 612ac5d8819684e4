package routes

import (
	"agencyops/internal/adapter/http/handlers"
	"agencyops/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPublic    = "/public"
	PathAdmin     = "/admin"
	PathWebhooks  = "/webhooks"
	PathAuth      = "/auth"
	PathFunctions = "/functions"
)

// addPublicRoutes mounts the unauthenticated client surface. The caller
// applies the per-IP rate limiter to the whole group.
func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	quotes := rg.Group("/quotes")
	{
		quotes.GET("/:id", h.Quotes.ViewQuote)
		quotes.POST("/:id/accept", h.Quotes.AcceptQuote)
		quotes.POST("/:id/decline", h.Quotes.DeclineQuote)
		quotes.POST("/:id/pay", h.QuotePayments.CreatePayment)
		quotes.POST("/:id/capture", h.QuotePayments.CapturePayment)
		quotes.POST("/:id/pay-direct", h.QuotePayments.PayDirect)
	}

	requests := rg.Group("/service-requests")
	{
		requests.POST("", h.ServiceRequests.Submit)
		requests.POST("/confirm", h.ServiceRequests.ConfirmStripe)
		requests.POST("/capture", h.ServiceRequests.CaptureOrder)
		requests.POST("/:id/attachments", h.ServiceRequests.UploadAttachment)
	}

	rg.POST("/contact", h.Leads.Contact)
}

func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.Quotes.CreateQuote)
		quotes.GET("", h.Quotes.ListQuotes)
		quotes.GET("/:id", h.Quotes.GetQuote)
		quotes.PUT("/:id", h.Quotes.UpdateQuote)
		quotes.DELETE("/:id", h.Quotes.DeleteQuote)
		quotes.POST("/:id/send", h.Quotes.SendQuote)
		quotes.GET("/:id/payments", h.QuotePayments.ListPayments)
	}

	leads := rg.Group("/leads")
	{
		leads.POST("", h.Leads.CreateLead)
		leads.GET("", h.Leads.ListLeads)
		leads.GET("/:id", h.Leads.GetLead)
		leads.PUT("/:id", h.Leads.UpdateLead)
		leads.PATCH("/:id/status", h.Leads.UpdateStatus)
		leads.DELETE("/:id", h.Leads.DeleteLead)
		leads.POST("/:id/convert", h.Leads.ConvertToProject)
		leads.POST("/:id/payment-link", h.Leads.SendPaymentLink)
	}

	projects := rg.Group("/projects")
	{
		projects.POST("", h.Projects.CreateProject)
		projects.GET("", h.Projects.ListProjects)
		projects.GET("/:id", h.Projects.GetProject)
		projects.PUT("/:id", h.Projects.UpdateProject)
		projects.DELETE("/:id", h.Projects.DeleteProject)
		projects.POST("/:id/tasks", h.Tasks.CreateTask)
		projects.GET("/:id/tasks", h.Tasks.ListTasks)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Tasks.CreateTask)
		tasks.GET("/:id", h.Tasks.GetTask)
		tasks.PUT("/:id", h.Tasks.UpdateTask)
		tasks.DELETE("/:id", h.Tasks.DeleteTask)
		tasks.POST("/:id/comments", h.Tasks.AddComment)
		tasks.GET("/:id/comments", h.Tasks.ListComments)
	}
	rg.DELETE("/comments/:id", h.Tasks.DeleteComment)

	templates := rg.Group("/task-templates")
	{
		templates.POST("", h.Templates.CreateTemplate)
		templates.GET("", h.Templates.ListTemplates)
		templates.GET("/:id", h.Templates.GetTemplate)
		templates.DELETE("/:id", h.Templates.DeleteTemplate)
		templates.POST("/:id/apply", h.Templates.ApplyTemplate)
	}

	requests := rg.Group("/service-requests")
	{
		requests.GET("", h.ServiceRequests.List)
		requests.GET("/:id", h.ServiceRequests.Get)
		requests.POST("/:id/complete", h.ServiceRequests.MarkComplete)
		requests.DELETE("/:id", h.ServiceRequests.Delete)
	}

	rg.POST("/reminders/run", h.Reminders.RunPaymentReminders)
}

// Webhooks authenticate through provider signatures, not sessions.
func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	rg.POST("/stripe", h.Stripe)
	rg.POST("/paypal", h.PayPal)
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, auth middleware.SessionParser, limiter *middleware.IPRateLimiter) {
	rg.POST("/login", limiter.Middleware(), h.Login)
	rg.GET("/me", middleware.RequireSession(auth), h.Me)
}
