package access

import "time"

// DefaultTrialDays applies when no trial period is configured.
const DefaultTrialDays = 14

// TrialDaysRemaining counts whole elapsed days since account creation against
// the trial window. Never negative.
func TrialDaysRemaining(now, createdAt time.Time, trialDays int) int {
	if trialDays <= 0 {
		trialDays = DefaultTrialDays
	}
	elapsed := int(now.Sub(createdAt).Hours() / 24)
	remaining := trialDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Evaluate decides whether a user may use paid features. Precedence is
// deliberate: administrative bypass > time-boxed trial > paid subscription >
// deny. The subscription store is only consulted once the trial has run out,
// so most requests never touch it.
//
// owner may be nil when the profile has no tenant/organizer row yet; the
// subscription step then finds nothing and the result is a deny.
func Evaluate(now time.Time, role string, createdAt time.Time, trialDays int, owner *Owner, subs SubscriptionChecker) (Decision, error) {
	if IsStaffRole(role) {
		return Decision{HasAccess: true, Reason: ReasonAdminOverride}, nil
	}

	if remaining := TrialDaysRemaining(now, createdAt, trialDays); remaining > 0 {
		return Decision{HasAccess: true, Reason: ReasonTrialActive, DaysRemaining: remaining}, nil
	}

	if owner != nil && subs != nil {
		active, err := subs.HasActive(owner.Type, owner.ID)
		if err != nil {
			return Decision{}, err
		}
		if active {
			return Decision{HasAccess: true, Reason: ReasonSubscriptionActive}, nil
		}
	}

	return Decision{HasAccess: false, Reason: ReasonExpired, DaysRemaining: 0}, nil
}
