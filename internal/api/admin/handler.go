package admin

import (
	"net/http"
	"time"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/access"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/accounting"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/profiles"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/subscriptions"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	TotalProfiles       int     `json:"total_profiles"`
	TotalTenants        int     `json:"total_tenants"`
	TotalOrganizers     int     `json:"total_organizers"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	TotalRevenue        float64 `json:"total_revenue"`
	RecentRevenue       float64 `json:"recent_revenue"`
}

func Dashboard(c *gin.Context) {
	var stats DashboardStats

	var totalProfiles, totalTenants, totalOrganizers, activeSubs int64
	database.DB.Model(&profiles.Profile{}).Count(&totalProfiles)
	database.DB.Model(&tenants.Tenant{}).Count(&totalTenants)
	database.DB.Model(&organizers.Organizer{}).Count(&totalOrganizers)
	database.DB.Model(&subscriptions.Subscription{}).
		Where("status = ? AND end_date > ?", subscriptions.StatusActive, time.Now()).
		Count(&activeSubs)

	var totalRevenue, recentRevenue float64
	database.DB.Model(&subscriptions.Subscription{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&subscriptions.Subscription{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&recentRevenue)

	stats.TotalProfiles = int(totalProfiles)
	stats.TotalTenants = int(totalTenants)
	stats.TotalOrganizers = int(totalOrganizers)
	stats.ActiveSubscriptions = int(activeSubs)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	c.JSON(http.StatusOK, stats)
}

func ListProfiles(c *gin.Context) {
	var list []profiles.Profile
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuatkan senarai profil."})
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetProfileDetails(c *gin.Context) {
	profileID := c.Param("id")

	var profile profiles.Profile
	if err := database.DB.First(&profile, profileID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil tidak ditemui."})
		return
	}

	out := gin.H{"profile": profile}

	var t tenants.Tenant
	if err := database.DB.Where("profile_id = ?", profile.ID).First(&t).Error; err == nil {
		out["tenant"] = t

		var subs []subscriptions.Subscription
		database.DB.
			Where("owner_type = ? AND owner_id = ?", subscriptions.OwnerTenant, t.ID).
			Order("end_date DESC").Find(&subs)
		out["subscriptions"] = subs

		var txs []accounting.Transaction
		database.DB.Where("tenant_id = ?", t.ID).Order("date DESC").Limit(50).Find(&txs)
		out["transactions"] = txs
	}

	var org organizers.Organizer
	if err := database.DB.Where("profile_id = ?", profile.ID).First(&org).Error; err == nil {
		out["organizer"] = org
	}

	c.JSON(http.StatusOK, out)
}

// SetProfileRole assigns staff roles administratively; sign-up never does.
func SetProfileRole(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !access.IsValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Peranan tidak sah."})
		return
	}

	var profile profiles.Profile
	if err := database.DB.First(&profile, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil tidak ditemui."})
		return
	}

	if err := database.DB.Model(&profile).Update("role", input.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengemas kini peranan."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Peranan dikemas kini.", "profile": profile})
}
