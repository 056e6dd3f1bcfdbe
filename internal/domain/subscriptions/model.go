package subscriptions

import "time"

const (
	OwnerTenant    = "tenant"
	OwnerOrganizer = "organizer"

	StatusActive = "active"
)

// Subscription rows are append-only. Expiry is implicit: a row counts as
// active only while end_date is still in the future, evaluated at query time.
type Subscription struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OwnerType  string    `gorm:"type:varchar(20);not null;index:idx_subscriptions_owner" json:"owner_type"`
	OwnerID    uint      `gorm:"not null;index:idx_subscriptions_owner" json:"owner_id"`
	PlanType   string    `json:"plan_type"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Amount     float64   `json:"amount"`
	PaymentRef string    `gorm:"column:payment_ref" json:"payment_ref"`
	CreatedAt  time.Time `json:"created_at"`
}
