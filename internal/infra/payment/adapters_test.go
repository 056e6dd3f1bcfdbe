package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChipCreatePaymentConvertsToMinorUnits(t *testing.T) {
	var got chipPurchaseRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/purchases/", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(chipPurchaseResponse{
			ID:          "pur_1",
			CheckoutURL: "https://gate.example/checkout/pur_1",
			Status:      "created",
		})
	}))
	defer srv.Close()

	c := &ChipClient{BaseURL: srv.URL, APIKey: "test-key", BrandID: "brand-1", HTTPClient: srv.Client()}

	url, err := c.CreatePayment("tenant@example.com", 45.00, "Langganan bulanan", "https://app/redirect", "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "https://gate.example/checkout/pur_1", url)

	assert.Equal(t, "brand-1", got.BrandID)
	assert.Equal(t, "tenant@example.com", got.Client.Email)
	require.Len(t, got.Purchase.Products, 1)
	assert.Equal(t, int64(4500), got.Purchase.Products[0].Price)
	assert.Equal(t, "Langganan bulanan", got.Purchase.Products[0].Name)
	assert.Equal(t, "https://app/redirect", got.SuccessRedirect)
	assert.Equal(t, "ref-1", got.Reference)
}

func TestChipCreatePaymentProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid brand_id"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := &ChipClient{BaseURL: srv.URL, APIKey: "k", BrandID: "b", HTTPClient: srv.Client()}

	_, err := c.CreatePayment("x@y.com", 10, "d", "r", "")
	require.Error(t, err)
	// the provider's message surfaces verbatim
	assert.Contains(t, err.Error(), "invalid brand_id")
}

func TestChipVerifyPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/purchases/pur_1/", r.URL.Path)
		w.Write([]byte(`{"status":"paid","purchase":{"total":4500}}`))
	}))
	defer srv.Close()

	c := &ChipClient{BaseURL: srv.URL, APIKey: "k", HTTPClient: srv.Client()}

	res, err := c.VerifyPayment("pur_1")
	require.NoError(t, err)
	assert.True(t, res.Paid)
	assert.Equal(t, "paid", res.State)
	assert.Equal(t, 45.00, res.Amount)
}

func TestBillplzCreateBill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bills", r.URL.Path)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "secret-key", user)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "col-1", r.PostForm.Get("collection_id"))
		assert.Equal(t, "tenant@example.com", r.PostForm.Get("email"))
		assert.Equal(t, "Ali", r.PostForm.Get("name"))
		assert.Equal(t, "4500", r.PostForm.Get("amount"))
		assert.Equal(t, "https://api/callback", r.PostForm.Get("callback_url"))
		assert.Equal(t, "https://app/redirect", r.PostForm.Get("redirect_url"))

		w.Write([]byte(`{"id":"bill_1","url":"https://billplz.example/bills/bill_1"}`))
	}))
	defer srv.Close()

	b := &BillplzClient{BaseURL: srv.URL, APIKey: "secret-key", CollectionID: "col-1", HTTPClient: srv.Client()}

	url, err := b.CreateBill("tenant@example.com", "Ali", 45.00, "Langganan", "https://api/callback", "https://app/redirect", "ref-9")
	require.NoError(t, err)
	assert.Equal(t, "https://billplz.example/bills/bill_1", url)
}

func TestBillplzVerifyPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bills/bill_1", r.URL.Path)
		w.Write([]byte(`{"id":"bill_1","paid":true,"state":"paid","amount":4500}`))
	}))
	defer srv.Close()

	b := &BillplzClient{BaseURL: srv.URL, APIKey: "k", HTTPClient: srv.Client()}

	res, err := b.VerifyPayment("bill_1")
	require.NoError(t, err)
	assert.True(t, res.Paid)
	assert.Equal(t, "paid", res.State)
	assert.Equal(t, 45.00, res.Amount)
}
