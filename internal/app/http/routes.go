package routes

import (
	accountingapi "github.com/webdevsha/permitakaun-6608e2f-sub002/internal/api/accounting"
	adminapi "github.com/webdevsha/permitakaun-6608e2f-sub002/internal/api/admin"
	authapi "github.com/webdevsha/permitakaun-6608e2f-sub002/internal/api/auth"
	locationsapi "github.com/webdevsha/permitakaun-6608e2f-sub002/internal/api/locations"
	organizersapi "github.com/webdevsha/permitakaun-6608e2f-sub002/internal/api/organizers"
	paymentsapi "github.com/webdevsha/permitakaun-6608e2f-sub002/internal/api/payments"
	profilesapi "github.com/webdevsha/permitakaun-6608e2f-sub002/internal/api/profiles"
	tenantsapi "github.com/webdevsha/permitakaun-6608e2f-sub002/internal/api/tenants"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/app/http/middleware"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/access"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// gateway redirect/callback target; verified against the gateway, never trusted
	r.GET("/payments/callback", paymentsapi.Callback)
	r.POST("/payments/callback", paymentsapi.Callback)

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", profilesapi.GetCurrentProfile)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/tenants", tenantsapi.ListTenants)
	auth.GET("/tenants/:id", tenantsapi.GetTenant)

	auth.GET("/organizers", organizersapi.ListOrganizers)
	auth.GET("/organizers/:id", organizersapi.GetOrganizer)

	auth.GET("/locations", locationsapi.ListLocations)
	auth.GET("/locations/:id", locationsapi.GetLocation)

	auth.POST("/payments/checkout", paymentsapi.Checkout)
	auth.POST("/subscriptions/activate", paymentsapi.ActivateSubscription)

	// Paid features: the accounting book sits behind the access evaluator
	paid := auth.Group("/")
	paid.Use(middleware.RequireAccess())
	paid.GET("/transactions", accountingapi.ListTransactions)
	paid.POST("/transactions", accountingapi.CreateTransaction)
	paid.GET("/transactions/summary", accountingapi.GetSummary)

	// Staff operations
	staff := r.Group("/")
	staff.Use(middleware.AuthMiddleware(), middleware.RequireRole(access.RoleStaff, access.RoleAdmin, access.RoleSuperadmin))
	staff.POST("/tenants", tenantsapi.CreateTenant)
	staff.PUT("/tenants/:id", tenantsapi.UpdateTenant)
	staff.POST("/tenants/:id/toggle-accounting", tenantsapi.ToggleAccountingStatus)
	staff.POST("/organizers", organizersapi.CreateOrganizer)
	staff.PUT("/organizers/:id", organizersapi.UpdateOrganizer)
	staff.POST("/organizers/:id/approve", organizersapi.ApproveOrganizer)
	staff.POST("/locations", locationsapi.CreateLocation)
	staff.PUT("/locations/:id", locationsapi.UpdateLocation)
	staff.DELETE("/locations/:id", locationsapi.DeleteLocation)
	staff.POST("/transactions/:id/approve", accountingapi.ApproveTransaction)
	staff.GET("/admin/settings/payment-mode", adminapi.GetPaymentMode)
	staff.PUT("/admin/settings/payment-mode", adminapi.UpdatePaymentMode)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(access.RoleAdmin, access.RoleSuperadmin))
	admin.GET("/dashboard", adminapi.Dashboard)
	admin.GET("/profiles", adminapi.ListProfiles)
	admin.GET("/profiles/:id", adminapi.GetProfileDetails)
	admin.PUT("/profiles/:id/role", adminapi.SetProfileRole)
	admin.POST("/backup", adminapi.RunBackup)
}
