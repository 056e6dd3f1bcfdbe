package database

import (
	"fmt"
	"log"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/accounting"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/locations"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/profiles"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/settings"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/subscriptions"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&profiles.Profile{},
		&profiles.VerificationToken{},
		&organizers.Organizer{},
		&tenants.Tenant{},
		&locations.Location{},
		&subscriptions.Subscription{},
		&accounting.Transaction{},
		&settings.SystemSetting{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
