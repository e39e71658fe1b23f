package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every request made by a Client that was not given
// its own http.Client.
const DefaultTimeout = 30 * time.Second

// Client talks to the contribution backend for a single widget token.
// All endpoints live under {baseURL}/api/widget/{widgetToken}/.
type Client struct {
	baseURL     string
	widgetToken string
	httpClient  *http.Client
}

// NewClient creates an API client for the given backend and widget token.
// Pass a nil httpClient to use a default one with a 30s timeout.
func NewClient(baseURL, widgetToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		widgetToken: widgetToken,
		httpClient:  httpClient,
	}
}

// WidgetToken returns the token this client was created with.
func (c *Client) WidgetToken() string {
	return c.widgetToken
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/api/widget/%s/%s", c.baseURL, c.widgetToken, path)
}

// do performs a single JSON request and returns the response. The caller owns
// the response body. No retries: every widget operation is a single attempt.
func (c *Client) do(ctx context.Context, method, url string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// errorBody is the shape the backend uses for non-2xx payment responses.
type errorBody struct {
	Message string `json:"message"`
}

// paymentError turns a non-2xx payment response into an error. When the body
// carries a message, the error text is exactly that message so the host
// application can surface it verbatim.
func paymentError(resp *http.Response) error {
	defer resp.Body.Close()
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Message != "" {
		return fmt.Errorf("%s", eb.Message)
	}
	return fmt.Errorf("payment request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
