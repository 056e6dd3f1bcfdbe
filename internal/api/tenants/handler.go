package tenants

import (
	"net/http"
	"strings"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/app/http/middleware"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/access"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"

	"github.com/gin-gonic/gin"
)

// ListTenants returns all tenants for staff roles, and only the tenants
// linked to the caller's organizer code for organizers.
func ListTenants(c *gin.Context) {
	role := c.GetString("role")

	q := database.DB.Order("created_at DESC")

	if role == access.RoleOrganizer {
		profile, err := middleware.CurrentProfile(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sila log masuk semula."})
			return
		}
		var org organizers.Organizer
		if err := database.DB.Where("profile_id = ?", profile.ID).First(&org).Error; err != nil {
			c.JSON(http.StatusOK, []tenants.Tenant{})
			return
		}
		q = q.Where("organizer_code = ?", org.Code)
	}

	var list []tenants.Tenant
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuatkan senarai penyewa."})
		return
	}

	c.JSON(http.StatusOK, list)
}

func GetTenant(c *gin.Context) {
	var t tenants.Tenant
	if err := database.DB.First(&t, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Penyewa tidak ditemui."})
		return
	}
	c.JSON(http.StatusOK, t)
}

func CreateTenant(c *gin.Context) {
	var input struct {
		BusinessName  string `json:"business_name" binding:"required"`
		BusinessType  string `json:"business_type"`
		Phone         string `json:"phone"`
		OrganizerCode string `json:"organizer_code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := tenants.Tenant{
		BusinessName:     input.BusinessName,
		BusinessType:     input.BusinessType,
		Phone:            input.Phone,
		Status:           "active",
		AccountingStatus: tenants.AccountingInactive,
	}
	if input.OrganizerCode != "" {
		code := strings.ToUpper(strings.TrimSpace(input.OrganizerCode))
		t.OrganizerCode = &code
	}

	if err := database.DB.Create(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mencipta penyewa."})
		return
	}

	c.JSON(http.StatusOK, t)
}

func UpdateTenant(c *gin.Context) {
	var t tenants.Tenant
	if err := database.DB.First(&t, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Penyewa tidak ditemui."})
		return
	}

	var input struct {
		BusinessName  *string `json:"business_name"`
		BusinessType  *string `json:"business_type"`
		Phone         *string `json:"phone"`
		Status        *string `json:"status"`
		OrganizerCode *string `json:"organizer_code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.BusinessName != nil {
		updates["business_name"] = *input.BusinessName
	}
	if input.BusinessType != nil {
		updates["business_type"] = *input.BusinessType
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.OrganizerCode != nil {
		updates["organizer_code"] = strings.ToUpper(strings.TrimSpace(*input.OrganizerCode))
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tiada perubahan."})
		return
	}

	if err := database.DB.Model(&t).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengemas kini penyewa."})
		return
	}

	c.JSON(http.StatusOK, t)
}

// ToggleAccountingStatus flips a tenant between active/inactive accounting.
// This is the only way the flag transitions besides a confirmed subscription
// payment; nothing flips it automatically.
func ToggleAccountingStatus(c *gin.Context) {
	var t tenants.Tenant
	if err := database.DB.First(&t, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Penyewa tidak ditemui."})
		return
	}

	next := tenants.AccountingActive
	if t.AccountingStatus == tenants.AccountingActive {
		next = tenants.AccountingInactive
	}

	if err := database.DB.Model(&t).Update("accounting_status", next).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengemas kini status akaun."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status akaun dikemas kini.", "accounting_status": next})
}
