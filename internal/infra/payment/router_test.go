package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSandbox struct {
	gotEmail    string
	gotAmount   float64
	gotRedirect string
	url         string
	err         error
	verify      VerifyResult
}

func (f *fakeSandbox) CreatePayment(email string, amount float64, description, redirectURL, reference string) (string, error) {
	f.gotEmail = email
	f.gotAmount = amount
	f.gotRedirect = redirectURL
	return f.url, f.err
}

func (f *fakeSandbox) VerifyPayment(id string) (VerifyResult, error) {
	return f.verify, nil
}

type fakeReal struct {
	gotName     string
	gotCallback string
	gotAmount   float64
	url         string
	err         error
	verify      VerifyResult
}

func (f *fakeReal) CreateBill(email, name string, amount float64, description, callbackURL, redirectURL, reference string) (string, error) {
	f.gotName = name
	f.gotCallback = callbackURL
	f.gotAmount = amount
	return f.url, f.err
}

func (f *fakeReal) VerifyPayment(id string) (VerifyResult, error) {
	return f.verify, nil
}

func newTestRouter(mode string, sandbox *fakeSandbox, real *fakeReal) *Router {
	return &Router{
		Mode:        func() string { return mode },
		Sandbox:     sandbox,
		Real:        real,
		AppURL:      "https://app.permitakaun.my",
		CallbackURL: "https://api.permitakaun.my/payments/callback",
	}
}

func TestCheckoutSandboxPassesMajorUnits(t *testing.T) {
	sandbox := &fakeSandbox{url: "https://gate.example/pay/abc"}
	r := newTestRouter(ModeSandbox, sandbox, &fakeReal{})

	url, err := r.Checkout("tenant@example.com", "Ali", CheckoutInput{
		Amount:       45.00,
		Description:  "Langganan bulanan",
		RedirectPath: "/akaun",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://gate.example/pay/abc", url)

	// no minor-unit conversion at the router layer
	assert.Equal(t, 45.00, sandbox.gotAmount)
	assert.Equal(t, "tenant@example.com", sandbox.gotEmail)
	assert.Equal(t, "https://app.permitakaun.my/akaun", sandbox.gotRedirect)
}

func TestCheckoutRealModeUsesBillGateway(t *testing.T) {
	real := &fakeReal{url: "https://billplz.example/bills/xyz"}
	r := newTestRouter(ModeReal, &fakeSandbox{}, real)

	url, err := r.Checkout("tenant@example.com", "Ali", CheckoutInput{Amount: 45.00})
	require.NoError(t, err)
	assert.Equal(t, "https://billplz.example/bills/xyz", url)
	assert.Equal(t, "Ali", real.gotName)
	assert.Equal(t, "https://api.permitakaun.my/payments/callback", real.gotCallback)
	assert.Equal(t, 45.00, real.gotAmount)
}

func TestCheckoutMissingEmail(t *testing.T) {
	r := newTestRouter(ModeSandbox, &fakeSandbox{url: "https://gate.example/pay"}, &fakeReal{})

	_, err := r.Checkout("", "Ali", CheckoutInput{Amount: 45.00})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCheckoutAdapterErrorBecomesUserMessage(t *testing.T) {
	sandbox := &fakeSandbox{err: errors.New("502 bad gateway")}
	r := newTestRouter(ModeSandbox, sandbox, &fakeReal{})

	_, err := r.Checkout("tenant@example.com", "Ali", CheckoutInput{Amount: 45.00})
	require.Error(t, err)
	assert.Equal(t, "Gagal mendapatkan URL pembayaran.", err.Error())
}

func TestCheckoutMissingURLBecomesUserMessage(t *testing.T) {
	sandbox := &fakeSandbox{url: ""}
	r := newTestRouter(ModeSandbox, sandbox, &fakeReal{})

	_, err := r.Checkout("tenant@example.com", "Ali", CheckoutInput{Amount: 45.00})
	require.Error(t, err)
	assert.Equal(t, "Gagal mendapatkan URL pembayaran.", err.Error())
}

func TestVerifyDispatchesByMode(t *testing.T) {
	sandbox := &fakeSandbox{verify: VerifyResult{Paid: true, State: "paid", Amount: 45}}
	real := &fakeReal{verify: VerifyResult{Paid: false, State: "due", Amount: 45}}

	got, err := newTestRouter(ModeSandbox, sandbox, real).Verify("p1")
	require.NoError(t, err)
	assert.True(t, got.Paid)

	got, err = newTestRouter(ModeReal, sandbox, real).Verify("p1")
	require.NoError(t, err)
	assert.False(t, got.Paid)
	assert.Equal(t, "due", got.State)
}
