package profiles

import (
	"net/http"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/app/http/middleware"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/access"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"

	"github.com/gin-gonic/gin"
)

// GET /me — the profile plus everything the frontend gates on: resolved role,
// access decision, and the owned tenant/organizer record if any.
func GetCurrentProfile(c *gin.Context) {
	profile, err := middleware.CurrentProfile(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sila log masuk semula."})
		return
	}

	role := access.ResolveRole(profile, profile.Email, config.OPERATOR_EMAILS)

	decision, err := middleware.EvaluateAccess(c, profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyemak status langganan."})
		return
	}

	out := gin.H{
		"profile": profile,
		"role":    role,
		"access":  decision,
	}

	switch role {
	case access.RoleOrganizer:
		var org organizers.Organizer
		if err := database.DB.Where("profile_id = ?", profile.ID).First(&org).Error; err == nil {
			out["organizer"] = org
		}
	case access.RoleTenant:
		var t tenants.Tenant
		if err := database.DB.Where("profile_id = ?", profile.ID).First(&t).Error; err == nil {
			out["tenant"] = t
		}
	}

	c.JSON(http.StatusOK, out)
}
