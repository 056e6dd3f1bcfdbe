package profiles

import "time"

// Profile is the single authorization signal for the whole app: every request
// resolves its role from this row (plus the operator allow-list fallback).
type Profile struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"not null;uniqueIndex:idx_profiles_email" json:"email"`
	FullName     string  `json:"full_name"`
	Phone        string  `json:"phone"`
	Password     *string `json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_profiles_google_sub" json:"-"`

	// tenant | organizer | staff | admin | superadmin
	Role          string  `json:"role"`
	OrganizerCode *string `gorm:"column:organizer_code" json:"organizer_code,omitempty"`
	IsVerified    bool    `json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
