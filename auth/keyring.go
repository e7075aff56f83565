// Package auth provides a high-level API for persisting and retrieving user credentials from the system keyring.
package auth

import (
	"os"

	"github.com/zalando/go-keyring"
)

const (
	service = "vidsan-cli"
	user    = "search-api-key"

	// EnvAPIKey overrides the keyring-stored credential when set.
	EnvAPIKey = "VIDSAN_SEARCH_API_KEY"
)

// SetAPIKey persists the search service API key to the system keyring.
func SetAPIKey(token string) error {
	return keyring.Set(service, user, token)
}

// GetAPIKey retrieves the search service API key.
// The environment variable takes precedence over the keyring entry.
func GetAPIKey() (string, error) {
	if env := os.Getenv(EnvAPIKey); env != "" {
		return env, nil
	}
	return keyring.Get(service, user)
}

// DeleteAPIKey removes the search service API key from the system keyring.
func DeleteAPIKey() error {
	return keyring.Delete(service, user)
}
