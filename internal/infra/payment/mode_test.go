package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSettings struct {
	value string
	err   error
}

func (f fakeSettings) PaymentMode() (string, error) {
	return f.value, f.err
}

func TestSelectModePersistedValueWins(t *testing.T) {
	// stored "real" beats a sandbox env fallback
	assert.Equal(t, ModeReal, SelectMode(fakeSettings{value: "real"}, true))
	// stored "sandbox" beats a real env fallback
	assert.Equal(t, ModeSandbox, SelectMode(fakeSettings{value: "sandbox"}, false))
}

func TestSelectModeUnsetFallsBackToEnv(t *testing.T) {
	assert.Equal(t, ModeSandbox, SelectMode(fakeSettings{value: ""}, true))
	assert.Equal(t, ModeReal, SelectMode(fakeSettings{value: ""}, false))
}

func TestSelectModeGarbageFallsBackToEnv(t *testing.T) {
	assert.Equal(t, ModeSandbox, SelectMode(fakeSettings{value: "production"}, true))
	assert.Equal(t, ModeReal, SelectMode(fakeSettings{value: "production"}, false))
}

func TestSelectModeReadErrorFailsSafe(t *testing.T) {
	// a broken settings read must never select the real gateway
	assert.Equal(t, ModeSandbox, SelectMode(fakeSettings{err: errors.New("db down")}, false))
}
