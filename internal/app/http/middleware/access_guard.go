package middleware

import (
	"net/http"
	"time"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/access"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/profiles"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/subscriptions"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"

	"github.com/gin-gonic/gin"
)

const ctxDecisionKey = "access_decision"

// EvaluateAccess computes the access decision for the authenticated profile:
// staff override, then trial window, then subscription lookup.
func EvaluateAccess(c *gin.Context, p *profiles.Profile) (access.Decision, error) {
	role := access.ResolveRole(p, c.GetString("email"), config.OPERATOR_EMAILS)
	owner := resolveOwner(role, p)
	store := subscriptions.NewStore(database.DB)
	return access.Evaluate(time.Now(), role, p.CreatedAt, config.TRIAL_PERIOD_DAYS, owner, store)
}

// RequireAccess gates paid features behind the trial/subscription decision.
func RequireAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := CurrentProfile(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sila log masuk semula."})
			return
		}

		decision, err := EvaluateAccess(c, p)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyemak status langganan."})
			return
		}

		if !decision.HasAccess {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error":  "Tempoh percubaan anda telah tamat. Sila langgan untuk meneruskan.",
				"access": decision,
			})
			return
		}

		c.Set(ctxDecisionKey, decision)
		c.Next()
	}
}

// resolveOwner finds the record subscriptions are keyed on. A profile without
// a tenant/organizer row yet simply has no owner, which reads as no
// subscription downstream.
func resolveOwner(role string, p *profiles.Profile) *access.Owner {
	switch role {
	case access.RoleOrganizer:
		var org organizers.Organizer
		if err := database.DB.Where("profile_id = ?", p.ID).First(&org).Error; err != nil {
			return nil
		}
		return &access.Owner{Type: subscriptions.OwnerOrganizer, ID: org.ID}
	case access.RoleTenant:
		var t tenants.Tenant
		if err := database.DB.Where("profile_id = ?", p.ID).First(&t).Error; err != nil {
			return nil
		}
		return &access.Owner{Type: subscriptions.OwnerTenant, ID: t.ID}
	}
	return nil
}
