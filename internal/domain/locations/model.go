package locations

import "time"

const (
	TypeDaily   = "daily"
	TypeMonthly = "monthly"
)

type Location struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	// daily | monthly
	Type string `gorm:"type:varchar(20);not null;default:'daily'" json:"type"`

	TentRate    float64 `json:"tent_rate"`
	StallRate   float64 `json:"stall_rate"`
	MonthlyRate float64 `json:"monthly_rate"`
	Capacity    int     `json:"capacity"`

	OrganizerID uint   `gorm:"index" json:"organizer_id"`
	Status      string `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
