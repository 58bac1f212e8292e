package routes

import (
	authapi "freelanceros/internal/api/auth"
	"freelanceros/internal/api/billing"
	clientsapi "freelanceros/internal/api/clients"
	"freelanceros/internal/api/dashboard"
	paymentsapi "freelanceros/internal/api/payments"
	plansapi "freelanceros/internal/api/plans"
	projectsapi "freelanceros/internal/api/projects"
	remindersapi "freelanceros/internal/api/reminders"
	scopeapi "freelanceros/internal/api/scope"
	"freelanceros/internal/api/seo"
	stripewebhooks "freelanceros/internal/api/stripewebhook"
	usersapi "freelanceros/internal/api/users"
	"freelanceros/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/api/webhooks/stripe", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/robots.txt", seo.Robots)
	r.GET("/sitemap.xml", seo.Sitemap)

	// Unauthenticated reads behind unguessable identifiers
	r.GET("/scope/share/:token", scopeapi.GetSharedVersion)
	r.GET("/public/invoices/:invoiceId", paymentsapi.GetPublicInvoice)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plansapi.ListPlans)
	public.GET("/verify", usersapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.PUT("/settings", usersapi.UpdateSettings)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/clients", clientsapi.ListClients)
	auth.GET("/clients/:id", clientsapi.GetClient)
	auth.GET("/projects", projectsapi.ListProjects)
	auth.GET("/projects/:id", projectsapi.GetProject)
	auth.GET("/projects/:id/scope", scopeapi.ListVersions)
	auth.GET("/scope/:id", scopeapi.GetVersion)
	auth.GET("/payments", paymentsapi.ListPayments)
	auth.GET("/payments/:id", paymentsapi.GetPayment)
	auth.GET("/reminders", remindersapi.ListReminders)

	// Locked accounts keep read access; writes need a live trial or
	// subscription.
	edit := auth.Group("/")
	edit.Use(middleware.RequireActiveSubscription())

	edit.POST("/clients", clientsapi.CreateClient)
	edit.PUT("/clients/:id", clientsapi.UpdateClient)
	edit.DELETE("/clients/:id", clientsapi.DeleteClient)
	edit.POST("/clients/:id/log-contact", clientsapi.LogContact)

	edit.POST("/projects", projectsapi.CreateProject)
	edit.PUT("/projects/:id", projectsapi.UpdateProject)
	edit.DELETE("/projects/:id", projectsapi.DeleteProject)
	edit.POST("/projects/:id/notes", projectsapi.AddNote)

	// Minting a share link is a plan capability beyond plain editing.
	edit.POST("/projects/:id/scope", middleware.RequireCapability("scope_sharing"), scopeapi.CreateVersion)

	edit.POST("/payments", paymentsapi.CreatePayment)
	edit.PUT("/payments/:id", paymentsapi.UpdatePayment)
	edit.DELETE("/payments/:id", paymentsapi.DeletePayment)
	edit.POST("/payments/:id/record", paymentsapi.RecordPayment)
	edit.POST("/payments/:id/cancel", paymentsapi.CancelPayment)
	edit.POST("/payments/:id/pay-link", paymentsapi.CreatePayLink)
	edit.POST("/payments/:id/send", paymentsapi.SendInvoiceEmail)

	edit.POST("/reminders", remindersapi.CreateReminder)
	edit.POST("/reminders/:id/done", remindersapi.MarkDone)
	edit.POST("/reminders/:id/snooze", remindersapi.Snooze)
	edit.POST("/reminders/:id/reschedule", remindersapi.Reschedule)
	edit.POST("/reminders/:id/send", remindersapi.SendNow)
	edit.DELETE("/reminders/:id", remindersapi.DeleteReminder)

	auth.GET("/dashboard/summary", dashboard.GetSummary)
	auth.GET("/dashboard/risks", dashboard.GetRisks)

	auth.GET("/billing/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)

	// Plan-gated
	gated := auth.Group("/")
	gated.Use(middleware.RequireCapability("csv_export"))
	gated.GET("/payments/export", paymentsapi.ExportCSV)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.POST("/sync-plans", plansapi.SyncPlansFromStripe)
}
