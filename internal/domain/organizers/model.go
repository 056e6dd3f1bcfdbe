package organizers

import "time"

const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// Organizer manages one or more marketplace locations. Tenants link to an
// organizer through its short unique code, not a foreign key.
type Organizer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProfileID *uint  `json:"profile_id,omitempty"`
	Name      string `gorm:"not null" json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Code      string `gorm:"column:organizer_code;not null;uniqueIndex:idx_organizers_code" json:"organizer_code"`
	Status    string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
