package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/accounting"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/locations"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/profiles"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/settings"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/subscriptions"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RunBackup dumps the fixed table list as one JSON document per run into
// BACKUP_DIR. On-demand only: not retried, not scheduled.
func RunBackup(c *gin.Context) {
	dump := map[string]interface{}{}

	tables := []struct {
		name string
		dest interface{}
	}{
		{"profiles", &[]profiles.Profile{}},
		{"organizers", &[]organizers.Organizer{}},
		{"tenants", &[]tenants.Tenant{}},
		{"locations", &[]locations.Location{}},
		{"subscriptions", &[]subscriptions.Subscription{}},
		{"transactions", &[]accounting.Transaction{}},
		{"system_settings", &[]settings.SystemSetting{}},
	}

	for _, t := range tables {
		if err := database.DB.Find(t.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Gagal mengeksport jadual %s.", t.name)})
			return
		}
		dump[t.name] = t.dest
	}

	if err := os.MkdirAll(config.BACKUP_DIR, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyediakan direktori sandaran."})
		return
	}

	backupID := uuid.NewString()
	filename := fmt.Sprintf("permitakaun-%s-%s.json", time.Now().Format("20060102-150405"), backupID[:8])
	path := filepath.Join(config.BACKUP_DIR, filename)

	payload, err := json.MarshalIndent(gin.H{
		"backup_id":  backupID,
		"created_at": time.Now(),
		"tables":     dump,
	}, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyediakan data sandaran."})
		return
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menulis fail sandaran."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Sandaran berjaya.",
		"backup_id": backupID,
		"file":      filename,
	})
}
