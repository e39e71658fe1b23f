package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Fallback amounts used when the backend omits a numeric field or sends
// something that isn't a number.
const (
	FallbackMinAmount     = 0.50
	FallbackMaxAmount     = 5.00
	FallbackDefaultAmount = 1.00
)

// Config is the merchant configuration the backend serves for a widget token.
// It is read-only once fetched; UpdateConfig on the widget replaces fields
// wholesale via Merge.
type Config struct {
	Currency          string  `json:"currency" yaml:"currency"`
	CurrencySymbol    string  `json:"currencySymbol" yaml:"currencySymbol"`
	MinAmount         float64 `json:"minAmount" yaml:"minAmount"`
	MaxAmount         float64 `json:"maxAmount" yaml:"maxAmount"`
	DefaultAmount     float64 `json:"defaultAmount" yaml:"defaultAmount"`
	ProjectName       string  `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	HasActiveProjects bool    `json:"hasActiveProjects" yaml:"hasActiveProjects"`
}

// ConfigPatch is a partial config for shallow merges. Nil fields are left
// untouched.
type ConfigPatch struct {
	Currency          *string  `json:"currency,omitempty"`
	CurrencySymbol    *string  `json:"currencySymbol,omitempty"`
	MinAmount         *float64 `json:"minAmount,omitempty"`
	MaxAmount         *float64 `json:"maxAmount,omitempty"`
	DefaultAmount     *float64 `json:"defaultAmount,omitempty"`
	ProjectName       *string  `json:"projectName,omitempty"`
	HasActiveProjects *bool    `json:"hasActiveProjects,omitempty"`
}

// Merge applies the non-nil fields of patch onto c.
func (c *Config) Merge(patch ConfigPatch) {
	if patch.Currency != nil {
		c.Currency = *patch.Currency
	}
	if patch.CurrencySymbol != nil {
		c.CurrencySymbol = *patch.CurrencySymbol
	}
	if patch.MinAmount != nil {
		c.MinAmount = *patch.MinAmount
	}
	if patch.MaxAmount != nil {
		c.MaxAmount = *patch.MaxAmount
	}
	if patch.DefaultAmount != nil {
		c.DefaultAmount = *patch.DefaultAmount
	}
	if patch.ProjectName != nil {
		c.ProjectName = *patch.ProjectName
	}
	if patch.HasActiveProjects != nil {
		c.HasActiveProjects = *patch.HasActiveProjects
	}
}

// rawConfig mirrors the wire shape. Amount fields come through as arbitrary
// JSON because some backends send numeric strings.
type rawConfig struct {
	Currency          string      `json:"currency"`
	CurrencySymbol    string      `json:"currencySymbol"`
	MinAmount         interface{} `json:"minAmount"`
	MaxAmount         interface{} `json:"maxAmount"`
	DefaultAmount     interface{} `json:"defaultAmount"`
	ProjectName       *string     `json:"projectName"`
	HasActiveProjects bool        `json:"hasActiveProjects"`
}

// coerceAmount extracts a float from whatever the backend sent, falling back
// to the given default when the value is absent or not numeric.
func coerceAmount(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return fallback
}

func (rc *rawConfig) toConfig() *Config {
	cfg := &Config{
		Currency:          rc.Currency,
		CurrencySymbol:    rc.CurrencySymbol,
		MinAmount:         coerceAmount(rc.MinAmount, FallbackMinAmount),
		MaxAmount:         coerceAmount(rc.MaxAmount, FallbackMaxAmount),
		DefaultAmount:     coerceAmount(rc.DefaultAmount, FallbackDefaultAmount),
		HasActiveProjects: rc.HasActiveProjects,
	}
	if rc.ProjectName != nil {
		cfg.ProjectName = *rc.ProjectName
	}
	return cfg
}

// FetchConfig retrieves the widget configuration. A single attempt: fetch
// failures surface to the caller, which renders them instead of retrying.
func (c *Client) FetchConfig(ctx context.Context) (*Config, error) {
	resp, err := c.do(ctx, http.MethodGet, c.endpoint("config"), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("configuration not found for token %s", c.widgetToken)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch configuration: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("no configuration found for token %s", c.widgetToken)
	}

	var rc rawConfig
	if err := json.Unmarshal(trimmed, &rc); err != nil {
		return nil, fmt.Errorf("no configuration found for token %s", c.widgetToken)
	}
	return rc.toConfig(), nil
}
