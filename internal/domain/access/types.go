package access

type Reason string

const (
	ReasonAdminOverride      Reason = "admin_override"
	ReasonTrialActive        Reason = "trial_active"
	ReasonSubscriptionActive Reason = "subscription_active"
	ReasonExpired            Reason = "expired"
)

// Decision is what the guard middleware and /me expose to the client.
type Decision struct {
	HasAccess     bool   `json:"has_access"`
	Reason        Reason `json:"reason"`
	DaysRemaining int    `json:"days_remaining"`
}

// Owner identifies the record a subscription is keyed on: the tenant row for
// tenant roles, the organizer row for organizer roles.
type Owner struct {
	Type string
	ID   uint
}

type SubscriptionChecker interface {
	HasActive(ownerType string, ownerID uint) (bool, error)
}
