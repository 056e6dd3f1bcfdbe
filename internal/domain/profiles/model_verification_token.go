package profiles

import "time"

type VerificationToken struct {
	ID        uint    `gorm:"primaryKey"`
	ProfileID uint    `gorm:"uniqueIndex"`
	Profile   Profile `gorm:"constraint:OnDelete:CASCADE"`
	Token     string  `gorm:"uniqueIndex"`
	Type      string  `gorm:"index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
