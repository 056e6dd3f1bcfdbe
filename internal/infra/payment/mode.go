package payment

import (
	"log"
	"strings"
)

const (
	ModeSandbox = "sandbox"
	ModeReal    = "real"
)

// SettingReader reads the persisted payment_mode value. An empty string means
// the setting is unset.
type SettingReader interface {
	PaymentMode() (string, error)
}

// SelectMode prefers the persisted setting over the environment fallback.
// A failed read logs and defaults to sandbox so a misconfiguration can never
// move real money.
func SelectMode(store SettingReader, sandboxFallback bool) string {
	v, err := store.PaymentMode()
	if err != nil {
		log.Println("payment_mode read failed, defaulting to sandbox:", err)
		return ModeSandbox
	}
	switch strings.TrimSpace(v) {
	case ModeSandbox:
		return ModeSandbox
	case ModeReal:
		return ModeReal
	}
	if sandboxFallback {
		return ModeSandbox
	}
	return ModeReal
}
