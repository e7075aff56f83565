// Package search provides a client for the generative completion service used to discover videos.
//
// The service is asked, with its web-search tool enabled, for the top videos
// matching a natural-language query and replies with a strict JSON array of
// title and URL pairs.
package search

import (
	"net/http"

	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/network"
	"github.com/spf13/viper"
)

// Doer executes a single HTTP request. Satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the completion service. Construct it explicitly and pass it
// to the shells; it holds no hidden global state beyond the shared transport.
type Client struct {
	// BaseURL of the completion service, without a trailing slash.
	BaseURL string
	// APIKey sent as a bearer token.
	APIKey string
	// Model identifier to request.
	Model string
	// Effort is the reasoning effort hint, usually "low".
	Effort string
	// Limit is the number of videos to ask for.
	Limit int

	// HTTP is the transport used for the request.
	HTTP Doer
}

// New returns a Client configured from global settings,
// using the shared application transport.
func New(apiKey string) *Client {
	return &Client{
		BaseURL: viper.GetString(key.SearchBaseURL),
		APIKey:  apiKey,
		Model:   viper.GetString(key.SearchModel),
		Effort:  viper.GetString(key.SearchReasoningEffort),
		Limit:   viper.GetInt(key.SearchMaxResults),
		HTTP:    network.Client,
	}
}
