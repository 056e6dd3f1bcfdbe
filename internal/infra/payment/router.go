package payment

import (
	"errors"
	"log"
	"strings"
)

// User-facing messages, surfaced as-is by the handlers.
var (
	ErrUnauthenticated = errors.New("Sila log masuk semula.")
	ErrNoPaymentURL    = errors.New("Gagal mendapatkan URL pembayaran.")
)

// VerifyResult is the normalized outcome of a gateway verification call.
type VerifyResult struct {
	Paid   bool    `json:"paid"`
	State  string  `json:"state"`
	Amount float64 `json:"amount"`
}

// SandboxGateway is the Chip-style create-payment contract.
type SandboxGateway interface {
	CreatePayment(email string, amount float64, description, redirectURL, reference string) (string, error)
	VerifyPayment(id string) (VerifyResult, error)
}

// RealGateway is the Billplz-style contract, which additionally wants the
// payer name and a server-side callback URL.
type RealGateway interface {
	CreateBill(email, name string, amount float64, description, callbackURL, redirectURL, reference string) (string, error)
	VerifyPayment(id string) (VerifyResult, error)
}

// CheckoutInput carries the caller's request. Amount stays in major currency
// units here; minor-unit conversion belongs to the adapter that needs it.
type CheckoutInput struct {
	Amount       float64
	Description  string
	Reference    string
	RedirectPath string
}

// Router dispatches a checkout to whichever gateway the current payment mode
// selects. It never writes local rows: transaction persistence happens after
// the gateway redirect completes, not here.
type Router struct {
	Mode        func() string
	Sandbox     SandboxGateway
	Real        RealGateway
	AppURL      string
	CallbackURL string
}

// Checkout returns the hosted payment page URL for client-side redirection.
func (r *Router) Checkout(email, name string, in CheckoutInput) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", ErrUnauthenticated
	}

	redirectURL := r.AppURL + in.RedirectPath

	var (
		payURL string
		err    error
	)
	switch r.Mode() {
	case ModeReal:
		payURL, err = r.Real.CreateBill(email, name, in.Amount, in.Description, r.CallbackURL, redirectURL, in.Reference)
	default:
		payURL, err = r.Sandbox.CreatePayment(email, in.Amount, in.Description, redirectURL, in.Reference)
	}

	if err != nil {
		log.Println("payment gateway error:", err)
		return "", ErrNoPaymentURL
	}
	if payURL == "" {
		return "", ErrNoPaymentURL
	}
	return payURL, nil
}

// Verify confirms a previously created payment against the gateway selected
// by the current mode.
func (r *Router) Verify(id string) (VerifyResult, error) {
	if r.Mode() == ModeReal {
		return r.Real.VerifyPayment(id)
	}
	return r.Sandbox.VerifyPayment(id)
}
