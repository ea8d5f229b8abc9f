package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	config "github.com/campbaraisa/camp_admin/configs"
)

const stripeAPIBase = "https://api.stripe.com"

type CheckoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

// CreateCheckoutSession opens a hosted Stripe checkout for the given dollar
// amount. Metadata is echoed back on the session so the webhook and status
// poll can find the local payment record.
func CreateCheckoutSession(amount float64, description, successURL, cancelURL string, metadata map[string]string) (*CheckoutSession, error) {
	apiKey := config.Config("STRIPE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("stripe API key not configured")
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][product_data][name]", description)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(int64(math.Round(amount*100)), 10))
	for key, value := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/checkout/sessions", stripeAPIBase), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(apiKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to create checkout session: %s", string(respBody))
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetCheckoutStatus polls a session's payment state.
func GetCheckoutStatus(sessionID string) (*CheckoutSession, error) {
	apiKey := config.Config("STRIPE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("stripe API key not configured")
	}

	req, err := http.NewRequest("GET", fmt.Sprintf("%s/v1/checkout/sessions/%s", stripeAPIBase, url.PathEscape(sessionID)), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(apiKey, "")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch checkout session: %s", string(respBody))
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

type WebhookEvent struct {
	Type          string
	SessionID     string
	PaymentStatus string
}

type webhookEnvelope struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string `json:"id"`
			PaymentStatus string `json:"payment_status"`
		} `json:"object"`
	} `json:"data"`
}

// ParseWebhookEvent verifies the Stripe-Signature header (t=...,v1=... with
// HMAC-SHA256 over "t.payload") and decodes the event envelope.
func ParseWebhookEvent(payload []byte, sigHeader string) (*WebhookEvent, error) {
	secret := config.Config("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("stripe webhook secret not configured")
	}

	var timestamp, signature string
	for _, part := range strings.Split(sigHeader, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signature = kv[1]
		}
	}
	if timestamp == "" || signature == "" {
		return nil, fmt.Errorf("malformed signature header")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, fmt.Errorf("signature verification failed")
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, err
	}

	return &WebhookEvent{
		Type:          envelope.Type,
		SessionID:     envelope.Data.Object.ID,
		PaymentStatus: envelope.Data.Object.PaymentStatus,
	}, nil
}
