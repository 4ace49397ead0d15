package routes

import (
	"github.com/gin-gonic/gin"

	adminapi "haulsaver-app/internal/api/admin"
	authapi "haulsaver-app/internal/api/auth"
	loadsapi "haulsaver-app/internal/api/loads"
	registrationapi "haulsaver-app/internal/api/registration"
	stripewebhooks "haulsaver-app/internal/api/stripewebhook"
	usersapi "haulsaver-app/internal/api/users"
	"haulsaver-app/internal/app/http/middleware"
)

// Handlers groups the stateful handlers wired in main.
type Handlers struct {
	Registration *registrationapi.Handler
	Webhook      *stripewebhooks.Handler
	Uploads      *loadsapi.UploadHandler
	Admin        *adminapi.Handler
}

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	// Stripe signs the raw body, so the webhook stays outside the sanitizer.
	r.POST("/api/registration/webhook", h.Webhook.HandleWebhook)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// The intent endpoint is reachable during onboarding, before login
	// completes; amount and currency come from config, never the body.
	public.POST("/api/registration/intent", h.Registration.CreateIntent)

	// Published loads are browsable without an account. OptionalAuth keeps
	// owners able to open their own drafts and unlocks contact reveal.
	public.GET("/api/loads/search", middleware.OptionalAuth(), loadsapi.SearchLoads)
	public.GET("/api/loads/:id", middleware.OptionalAuth(), loadsapi.GetLoadByID)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/api/me", usersapi.GetCurrentUser)
	auth.GET("/api/payments", h.Registration.GetPaymentHistory)
	auth.GET("/api/registration/intent/:id", h.Registration.GetIntent)
	auth.POST("/api/registration/mark-paid", h.Registration.MarkPaid)
	auth.POST("/change-password", authapi.ChangePassword)

	// Paid marketplace surface
	paid := auth.Group("/")
	paid.Use(middleware.RequirePaidRegistration())
	paid.GET("/api/loads", loadsapi.GetMyLoads)
	paid.POST("/api/loads", loadsapi.CreateLoad)
	paid.PUT("/api/loads/:id", loadsapi.UpdateLoad)
	paid.DELETE("/api/loads/:id", loadsapi.DeleteLoad)
	paid.POST("/api/loads/:id/publish", loadsapi.PublishLoad)
	paid.POST("/api/loads/:id/unpublish", loadsapi.UnpublishLoad)
	paid.POST("/api/loads/:id/close", loadsapi.CloseLoad)
	paid.POST("/api/loads/:id/photo", h.Uploads.UploadLoadPhoto)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", h.Admin.AdminDashboard)
	admin.GET("/users", h.Admin.ListAllUsers)
	admin.GET("/payments", h.Admin.ListAllPayments)
	admin.GET("/reconciliation", h.Admin.ListUnreconciled)
	admin.POST("/reconciliation/:intentId", h.Admin.ReconcilePayment)
	admin.POST("/users/:id/ban", h.Admin.BanUser)
}
