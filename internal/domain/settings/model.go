package settings

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Known keys.
const KeyPaymentMode = "payment_mode"

type SystemSetting struct {
	Key       string    `gorm:"primaryKey;column:key" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func Get(db *gorm.DB, key string) (string, error) {
	var s SystemSetting
	err := db.Where("key = ?", key).First(&s).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return s.Value, nil
}

func Set(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&SystemSetting{Key: key, Value: value, UpdatedAt: time.Now()}).Error
}
