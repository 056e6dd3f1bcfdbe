package middleware

import (
	"errors"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/profiles"

	"github.com/gin-gonic/gin"
)

const ctxProfileKey = "current_profile"

var errNoSession = errors.New("no authenticated session")

// CurrentProfile loads the authenticated profile once per request and caches
// it on the gin context. The cache lives and dies with the request; nothing
// is shared across requests.
func CurrentProfile(c *gin.Context) (*profiles.Profile, error) {
	if v, ok := c.Get(ctxProfileKey); ok {
		if p, ok := v.(*profiles.Profile); ok {
			return p, nil
		}
	}

	email := c.GetString("email")
	if email == "" {
		return nil, errNoSession
	}

	var p profiles.Profile
	if err := database.DB.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}

	c.Set(ctxProfileKey, &p)
	return &p, nil
}
