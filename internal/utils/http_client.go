package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request issued by the vault client.
const UserAgent = "go-vault-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(0)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// A positive timeout bounds every request; zero or a negative value keeps
// the transport default. Each call returns an independent client instance
// with its own configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://waifuvault.moe/rest/some-token")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
