package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
)

// ChipClient talks to the Chip-In purchases API. Used for sandbox mode.
type ChipClient struct {
	BaseURL    string
	APIKey     string
	BrandID    string
	HTTPClient *http.Client
}

func NewChipClient() *ChipClient {
	return &ChipClient{
		BaseURL:    config.CHIP_API_URL,
		APIKey:     config.CHIP_API_KEY,
		BrandID:    config.CHIP_BRAND_ID,
		HTTPClient: http.DefaultClient,
	}
}

type chipPurchaseRequest struct {
	BrandID         string       `json:"brand_id"`
	Client          chipClient   `json:"client"`
	Purchase        chipPurchase `json:"purchase"`
	Reference       string       `json:"reference,omitempty"`
	SuccessRedirect string       `json:"success_redirect"`
	FailureRedirect string       `json:"failure_redirect,omitempty"`
}

type chipClient struct {
	Email string `json:"email"`
}

type chipPurchase struct {
	Products []chipProduct `json:"products"`
}

type chipProduct struct {
	Name  string `json:"name"`
	Price int64  `json:"price"` // minor units (sen)
}

type chipPurchaseResponse struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

// CreatePayment creates a hosted checkout session. amount arrives in major
// currency units; the minor-unit conversion happens here because this
// provider requires it.
func (c *ChipClient) CreatePayment(email string, amount float64, description, redirectURL, reference string) (string, error) {
	body := chipPurchaseRequest{
		BrandID:         c.BrandID,
		Client:          chipClient{Email: email},
		Purchase:        chipPurchase{Products: []chipProduct{{Name: description, Price: int64(math.Round(amount * 100))}}},
		Reference:       reference,
		SuccessRedirect: redirectURL,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/purchases/", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// provider errors surface verbatim to the caller
		return "", fmt.Errorf("chip: %s: %s", resp.Status, string(raw))
	}

	var out chipPurchaseResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("chip: invalid response: %w", err)
	}
	return out.CheckoutURL, nil
}

// VerifyPayment polls a previously created purchase.
func (c *ChipClient) VerifyPayment(id string) (VerifyResult, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/purchases/"+id+"/", nil)
	if err != nil {
		return VerifyResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return VerifyResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return VerifyResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return VerifyResult{}, fmt.Errorf("chip: %s: %s", resp.Status, string(raw))
	}

	var out struct {
		Status   string `json:"status"`
		Purchase struct {
			Total int64 `json:"total"`
		} `json:"purchase"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return VerifyResult{}, fmt.Errorf("chip: invalid response: %w", err)
	}

	return VerifyResult{
		Paid:   out.Status == "paid",
		State:  out.Status,
		Amount: float64(out.Purchase.Total) / 100.0,
	}, nil
}
