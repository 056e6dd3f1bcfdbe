package accounting

import (
	"net/http"
	"time"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/app/http/middleware"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/access"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/accounting"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"

	"github.com/gin-gonic/gin"
)

// tenantForRequest scopes accounting operations: tenants only ever see their
// own book; staff may pass ?tenant_id= to inspect any.
func tenantForRequest(c *gin.Context) (*tenants.Tenant, bool) {
	role := c.GetString("role")

	if access.IsStaffRole(role) {
		if id := c.Query("tenant_id"); id != "" {
			var t tenants.Tenant
			if err := database.DB.First(&t, id).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Penyewa tidak ditemui."})
				return nil, false
			}
			return &t, true
		}
		return nil, true // staff without a filter: all tenants
	}

	profile, err := middleware.CurrentProfile(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sila log masuk semula."})
		return nil, false
	}

	var t tenants.Tenant
	if err := database.DB.Where("profile_id = ?", profile.ID).First(&t).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rekod penyewa tidak ditemui."})
		return nil, false
	}
	return &t, true
}

func ListTransactions(c *gin.Context) {
	t, ok := tenantForRequest(c)
	if !ok {
		return
	}

	q := database.DB.Order("date DESC, id DESC")
	if t != nil {
		q = q.Where("tenant_id = ?", t.ID)
	}
	if month := c.Query("month"); month != "" {
		// month arrives as YYYY-MM
		if start, err := time.Parse("2006-01", month); err == nil {
			q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
		}
	}

	var list []accounting.Transaction
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuatkan transaksi."})
		return
	}

	c.JSON(http.StatusOK, list)
}

func CreateTransaction(c *gin.Context) {
	t, ok := tenantForRequest(c)
	if !ok {
		return
	}
	if t == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant_id diperlukan."})
		return
	}

	var input struct {
		Amount      float64 `json:"amount" binding:"required"`
		Type        string  `json:"type" binding:"required"`
		Category    string  `json:"category"`
		Date        string  `json:"date" binding:"required"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Type != accounting.TypeIncome && input.Type != accounting.TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Jenis transaksi mesti income atau expense."})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format tarikh tidak sah (YYYY-MM-DD)."})
		return
	}

	tx := accounting.Transaction{
		TenantID:    t.ID,
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    input.Category,
		Status:      accounting.StatusPending,
		Date:        date,
		Description: input.Description,
	}

	if err := database.DB.Create(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan transaksi."})
		return
	}

	c.JSON(http.StatusOK, tx)
}

// ApproveTransaction marks a pending transaction approved. Staff only.
func ApproveTransaction(c *gin.Context) {
	var tx accounting.Transaction
	if err := database.DB.First(&tx, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaksi tidak ditemui."})
		return
	}

	if err := database.DB.Model(&tx).Update("status", accounting.StatusApproved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal meluluskan transaksi."})
		return
	}

	c.JSON(http.StatusOK, tx)
}

// GetSummary totals approved income/expense for the scoped tenant.
func GetSummary(c *gin.Context) {
	t, ok := tenantForRequest(c)
	if !ok {
		return
	}

	sum := func(txType string) float64 {
		q := database.DB.Model(&accounting.Transaction{}).
			Where("status = ? AND type = ?", accounting.StatusApproved, txType)
		if t != nil {
			q = q.Where("tenant_id = ?", t.ID)
		}
		var total float64
		q.Select("COALESCE(SUM(amount), 0)").Scan(&total)
		return total
	}

	income := sum(accounting.TypeIncome)
	expense := sum(accounting.TypeExpense)

	c.JSON(http.StatusOK, gin.H{
		"income":  income,
		"expense": expense,
		"balance": income - expense,
	})
}
