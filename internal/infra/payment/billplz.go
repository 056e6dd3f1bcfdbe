package payment

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
)

// BillplzClient talks to the Billplz bills API. Used for real mode.
type BillplzClient struct {
	BaseURL      string
	APIKey       string
	CollectionID string
	HTTPClient   *http.Client
}

func NewBillplzClient() *BillplzClient {
	return &BillplzClient{
		BaseURL:      config.BILLPLZ_API_URL,
		APIKey:       config.BILLPLZ_API_KEY,
		CollectionID: config.BILLPLZ_COLLECTION_ID,
		HTTPClient:   http.DefaultClient,
	}
}

type billplzBillResponse struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Paid   bool   `json:"paid"`
	State  string `json:"state"`
	Amount int64  `json:"amount"`
}

// CreateBill creates a hosted bill. Billplz wants the amount in sen and a
// server-side callback URL distinct from the user-facing redirect.
func (b *BillplzClient) CreateBill(email, name string, amount float64, description, callbackURL, redirectURL, reference string) (string, error) {
	form := url.Values{}
	form.Set("collection_id", b.CollectionID)
	form.Set("email", email)
	form.Set("name", name)
	form.Set("amount", strconv.FormatInt(int64(math.Round(amount*100)), 10))
	form.Set("description", description)
	form.Set("callback_url", callbackURL)
	form.Set("redirect_url", redirectURL)
	if reference != "" {
		form.Set("reference_1_label", "Rujukan")
		form.Set("reference_1", reference)
	}

	req, err := http.NewRequest(http.MethodPost, b.BaseURL+"/bills", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// Billplz auth: API key as the Basic username, empty password
	req.SetBasicAuth(b.APIKey, "")

	resp, err := b.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("billplz: %s: %s", resp.Status, string(raw))
	}

	var out billplzBillResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("billplz: invalid response: %w", err)
	}
	return out.URL, nil
}

// VerifyPayment fetches the bill state.
func (b *BillplzClient) VerifyPayment(id string) (VerifyResult, error) {
	req, err := http.NewRequest(http.MethodGet, b.BaseURL+"/bills/"+id, nil)
	if err != nil {
		return VerifyResult{}, err
	}
	req.SetBasicAuth(b.APIKey, "")

	resp, err := b.HTTPClient.Do(req)
	if err != nil {
		return VerifyResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return VerifyResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return VerifyResult{}, fmt.Errorf("billplz: %s: %s", resp.Status, string(raw))
	}

	var out billplzBillResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return VerifyResult{}, fmt.Errorf("billplz: invalid response: %w", err)
	}

	return VerifyResult{
		Paid:   out.Paid,
		State:  out.State,
		Amount: float64(out.Amount) / 100.0,
	}, nil
}
