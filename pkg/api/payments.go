package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// PaymentLink is the result of a card payment-link creation. The host opens
// PaymentURL in the user's browser to complete the contribution.
type PaymentLink struct {
	PaymentURL  string `json:"paymentUrl"`
	ProjectName string `json:"projectName,omitempty"`
}

// MobileMoneyRequest carries the form values collected by the mobile-money
// modal. CustomerName is a pointer so anonymous contributions serialize as
// JSON null rather than an empty string.
type MobileMoneyRequest struct {
	Amount         float64 `json:"amount"`
	MobileNumber   string  `json:"mobileNumber"`
	MobileProvider string  `json:"mobileProvider"`
	CustomerName   *string `json:"customerName"`
}

// MobileMoneyPayment is the result of initiating a mobile-money contribution.
type MobileMoneyPayment struct {
	PaymentToken string `json:"paymentToken"`
}

type createPaymentLinkRequest struct {
	Amount float64 `json:"amount"`
}

// CreatePaymentLink asks the backend for a hosted card payment page for the
// given amount.
func (c *Client) CreatePaymentLink(ctx context.Context, amount float64) (*PaymentLink, error) {
	resp, err := c.do(ctx, http.MethodPost, c.endpoint("stripe/create-payment-link"), createPaymentLinkRequest{Amount: amount})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, paymentError(resp)
	}
	defer resp.Body.Close()

	var link PaymentLink
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, fmt.Errorf("failed to parse payment link response: %w", err)
	}
	if link.PaymentURL == "" {
		return nil, fmt.Errorf("no payment URL in response")
	}
	return &link, nil
}

// InitiateMobileMoneyPayment starts a mobile-money contribution. The returned
// payment token identifies the pending transaction on the provider side.
func (c *Client) InitiateMobileMoneyPayment(ctx context.Context, req MobileMoneyRequest) (*MobileMoneyPayment, error) {
	resp, err := c.do(ctx, http.MethodPost, c.endpoint("mobileMoney/initiate-payment"), req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, paymentError(resp)
	}
	defer resp.Body.Close()

	var payment MobileMoneyPayment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("failed to parse payment response: %w", err)
	}
	return &payment, nil
}
