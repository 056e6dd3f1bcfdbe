package payments

import (
	"net/http"
	"time"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/app/http/middleware"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/access"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/settings"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/subscriptions"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/infra/payment"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dbSettings struct{}

func (dbSettings) PaymentMode() (string, error) {
	return settings.Get(database.DB, settings.KeyPaymentMode)
}

func newRouter() *payment.Router {
	return &payment.Router{
		Mode: func() string {
			return payment.SelectMode(dbSettings{}, config.PAYMENT_SANDBOX)
		},
		Sandbox:     payment.NewChipClient(),
		Real:        payment.NewBillplzClient(),
		AppURL:      config.APP_URL,
		CallbackURL: config.SERVER_URL + "/payments/callback",
	}
}

// POST /payments/checkout — returns the hosted payment page URL.
func Checkout(c *gin.Context) {
	var input struct {
		Amount       float64 `json:"amount" binding:"required"`
		Description  string  `json:"description"`
		RedirectPath string  `json:"redirect_path"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Jumlah tidak sah."})
		return
	}

	profile, err := middleware.CurrentProfile(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": payment.ErrUnauthenticated.Error()})
		return
	}

	if input.Description == "" {
		input.Description = "Langganan Permit Akaun"
	}
	if input.RedirectPath == "" {
		input.RedirectPath = "/akaun/pembayaran-selesai"
	}

	reference := uuid.NewString()

	url, err := newRouter().Checkout(profile.Email, profile.FullName, payment.CheckoutInput{
		Amount:       input.Amount,
		Description:  input.Description,
		Reference:    reference,
		RedirectPath: input.RedirectPath,
	})
	if err != nil {
		status := http.StatusBadGateway
		if err == payment.ErrUnauthenticated {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "reference": reference})
}

// GET /payments/callback — the gateway redirect/callback target. Query params
// are never trusted: the payment is re-verified against the gateway before
// anything is shown or recorded.
func Callback(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		id = c.Query("billplz[id]")
	}
	if id == "" {
		// the real gateway's server-side callback posts form data instead
		id = c.PostForm("billplz[id]")
	}
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID pembayaran tiada."})
		return
	}

	result, err := newRouter().Verify(id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Gagal mengesahkan pembayaran."})
		return
	}

	msg := "Pembayaran belum selesai."
	if result.Paid {
		msg = "Pembayaran berjaya."
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"payment": result,
	})
}

// POST /subscriptions/activate — verifies the payment, then inserts the
// subscription row and flips the tenant's accounting status inside one
// database transaction so the two cannot diverge.
func ActivateSubscription(c *gin.Context) {
	var input struct {
		PaymentID string `json:"payment_id" binding:"required"`
		PlanType  string `json:"plan_type"`
		Months    int    `json:"months"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Months <= 0 {
		input.Months = 1
	}
	if input.PlanType == "" {
		input.PlanType = "monthly"
	}

	profile, err := middleware.CurrentProfile(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": payment.ErrUnauthenticated.Error()})
		return
	}

	result, err := newRouter().Verify(input.PaymentID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Gagal mengesahkan pembayaran."})
		return
	}
	if !result.Paid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pembayaran belum diterima."})
		return
	}

	role := access.ResolveRole(profile, profile.Email, config.OPERATOR_EMAILS)

	now := time.Now()
	sub := subscriptions.Subscription{
		PlanType:   input.PlanType,
		Status:     subscriptions.StatusActive,
		StartDate:  now,
		EndDate:    now.AddDate(0, input.Months, 0),
		Amount:     result.Amount,
		PaymentRef: input.PaymentID,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		switch role {
		case access.RoleOrganizer:
			var org organizers.Organizer
			if err := tx.Where("profile_id = ?", profile.ID).First(&org).Error; err != nil {
				return err
			}
			sub.OwnerType = subscriptions.OwnerOrganizer
			sub.OwnerID = org.ID
			return tx.Create(&sub).Error
		default:
			var t tenants.Tenant
			if err := tx.Where("profile_id = ?", profile.ID).First(&t).Error; err != nil {
				return err
			}
			sub.OwnerType = subscriptions.OwnerTenant
			sub.OwnerID = t.ID
			if err := tx.Create(&sub).Error; err != nil {
				return err
			}
			return tx.Model(&t).Update("accounting_status", tenants.AccountingActive).Error
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengaktifkan langganan."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Langganan diaktifkan.", "subscription": sub})
}
