package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables the commands read their backend credentials from.
const (
	EnvToken   = "CONTRIBLY_TOKEN"
	EnvBaseURL = "CONTRIBLY_BASE_URL"
)

// LoadEnv loads a .env file when present. A missing file is fine; explicit
// environment variables always win.
func LoadEnv() {
	_ = godotenv.Load()
}

// Credentials resolves the widget token and base URL, preferring the flag
// values when set and falling back to the environment.
func Credentials(tokenFlag, baseURLFlag string) (token, baseURL string, err error) {
	token = tokenFlag
	if token == "" {
		token = os.Getenv(EnvToken)
	}
	baseURL = baseURLFlag
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if token == "" || baseURL == "" {
		return "", "", fmt.Errorf("widget token and base URL are required (set %s and %s, or pass --token/--base-url)", EnvToken, EnvBaseURL)
	}
	return token, baseURL, nil
}
