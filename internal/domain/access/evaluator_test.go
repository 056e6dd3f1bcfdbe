package access

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubs struct {
	active bool
	err    error
	calls  int
}

func (f *fakeSubs) HasActive(ownerType string, ownerID uint) (bool, error) {
	f.calls++
	return f.active, f.err
}

func TestEvaluateStaffRolesAlwaysPass(t *testing.T) {
	now := time.Now()
	// account long past any trial, no subscription
	createdAt := now.AddDate(0, 0, -100)
	subs := &fakeSubs{active: false}

	for _, role := range []string{RoleAdmin, RoleSuperadmin, RoleStaff} {
		d, err := Evaluate(now, role, createdAt, 14, &Owner{Type: "tenant", ID: 1}, subs)
		require.NoError(t, err)
		assert.True(t, d.HasAccess, role)
		assert.Equal(t, ReasonAdminOverride, d.Reason, role)
	}
	// admin bypass must not even consult the store
	assert.Zero(t, subs.calls)
}

func TestEvaluateTrialStillRunning(t *testing.T) {
	now := time.Now()
	createdAt := now.AddDate(0, 0, -13) // 14-day trial, one day left

	d, err := Evaluate(now, RoleTenant, createdAt, 14, nil, nil)
	require.NoError(t, err)
	assert.True(t, d.HasAccess)
	assert.Equal(t, ReasonTrialActive, d.Reason)
	assert.Equal(t, 1, d.DaysRemaining)
}

func TestEvaluateTrialExpiredNoSubscription(t *testing.T) {
	now := time.Now()
	createdAt := now.AddDate(0, 0, -15)
	subs := &fakeSubs{active: false}

	d, err := Evaluate(now, RoleTenant, createdAt, 14, &Owner{Type: "tenant", ID: 7}, subs)
	require.NoError(t, err)
	assert.False(t, d.HasAccess)
	assert.Equal(t, ReasonExpired, d.Reason)
	assert.Equal(t, 0, d.DaysRemaining)
	assert.Equal(t, 1, subs.calls)
}

func TestEvaluateActiveSubscriptionAfterTrial(t *testing.T) {
	now := time.Now()
	createdAt := now.AddDate(0, 0, -40)
	subs := &fakeSubs{active: true}

	d, err := Evaluate(now, RoleTenant, createdAt, 14, &Owner{Type: "tenant", ID: 7}, subs)
	require.NoError(t, err)
	assert.True(t, d.HasAccess)
	assert.Equal(t, ReasonSubscriptionActive, d.Reason)
}

func TestEvaluateOrganizerOwnerUsesSameStore(t *testing.T) {
	now := time.Now()
	createdAt := now.AddDate(0, 0, -40)
	subs := &fakeSubs{active: true}

	d, err := Evaluate(now, RoleOrganizer, createdAt, 14, &Owner{Type: "organizer", ID: 3}, subs)
	require.NoError(t, err)
	assert.True(t, d.HasAccess)
	assert.Equal(t, ReasonSubscriptionActive, d.Reason)
}

func TestEvaluateNoOwnerMeansNoSubscription(t *testing.T) {
	now := time.Now()
	createdAt := now.AddDate(0, 0, -40)

	d, err := Evaluate(now, RoleTenant, createdAt, 14, nil, &fakeSubs{active: true})
	require.NoError(t, err)
	assert.False(t, d.HasAccess)
	assert.Equal(t, ReasonExpired, d.Reason)
}

func TestEvaluateStoreErrorPropagates(t *testing.T) {
	now := time.Now()
	createdAt := now.AddDate(0, 0, -40)
	subs := &fakeSubs{err: errors.New("db down")}

	_, err := Evaluate(now, RoleTenant, createdAt, 14, &Owner{Type: "tenant", ID: 7}, subs)
	require.Error(t, err)
}

func TestEvaluateZeroTrialDaysFallsBackToDefault(t *testing.T) {
	now := time.Now()
	createdAt := now.AddDate(0, 0, -5)

	d, err := Evaluate(now, RoleTenant, createdAt, 0, nil, nil)
	require.NoError(t, err)
	assert.True(t, d.HasAccess)
	assert.Equal(t, ReasonTrialActive, d.Reason)
	assert.Equal(t, DefaultTrialDays-5, d.DaysRemaining)
}

func TestTrialDaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		createdAt time.Time
		trialDays int
		want      int
	}{
		{"fresh account", now, 14, 14},
		{"one day left", now.AddDate(0, 0, -13), 14, 1},
		{"expires today", now.AddDate(0, 0, -14), 14, 0},
		{"long expired", now.AddDate(0, 0, -60), 14, 0},
		{"partial day does not count", now.Add(-36 * time.Hour), 14, 13},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TrialDaysRemaining(now, tc.createdAt, tc.trialDays))
		})
	}
}
