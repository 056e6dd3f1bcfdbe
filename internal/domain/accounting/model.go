package accounting

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	StatusApproved = "approved"
	StatusPending  = "pending"
)

type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TenantID    uint      `gorm:"not null;index" json:"tenant_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`
	Category    string    `json:"category"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Date        time.Time `gorm:"not null" json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
