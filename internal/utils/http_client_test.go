package utils

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(0)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient(0)

	// Ensure the embedded client is actually a *resty.Client
	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0)
	client2 := NewHTTPClient(0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(5 * time.Second)
	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", got)
	}

	client = NewHTTPClient(0)
	if got := client.GetClient().Timeout; got != 0 {
		t.Fatalf("expected transport default timeout, got %s", got)
	}
}

func TestNewHTTPClient_UserAgent(t *testing.T) {
	client := NewHTTPClient(0)
	if got := client.Header.Get("User-Agent"); got != UserAgent {
		t.Fatalf("expected user agent %q, got %q", UserAgent, got)
	}
}
