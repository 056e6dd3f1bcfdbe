package tenants

import "time"

const (
	AccountingActive   = "active"
	AccountingInactive = "inactive"
)

type Tenant struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ProfileID    *uint  `json:"profile_id,omitempty"`
	BusinessName string `gorm:"not null" json:"business_name"`
	BusinessType string `json:"business_type"`
	Phone        string `json:"phone"`
	Status       string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// AccountingStatus toggles only via an explicit staff action or a
	// confirmed subscription payment, never automatically.
	AccountingStatus string `gorm:"type:varchar(20);not null;default:'inactive'" json:"accounting_status"`

	OrganizerCode *string `gorm:"column:organizer_code;index" json:"organizer_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
