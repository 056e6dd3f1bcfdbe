package admin

import (
	"net/http"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/settings"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/infra/payment"

	"github.com/gin-gonic/gin"
)

// GET /admin/settings/payment-mode
func GetPaymentMode(c *gin.Context) {
	value, err := settings.Get(database.DB, settings.KeyPaymentMode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membaca tetapan."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_mode": value})
}

// PUT /admin/settings/payment-mode — switches which gateway handles checkout.
func UpdatePaymentMode(c *gin.Context) {
	var input struct {
		Mode string `json:"payment_mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Mode != payment.ModeSandbox && input.Mode != payment.ModeReal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mod pembayaran mesti sandbox atau real."})
		return
	}

	if err := settings.Set(database.DB, settings.KeyPaymentMode, input.Mode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan tetapan."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mod pembayaran dikemas kini.", "payment_mode": input.Mode})
}
