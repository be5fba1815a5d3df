package shopify

import (
	"testing"

	"github.com/falconboard/boardflow/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{ShopifyAPIAddress: "https://example.myshopify.com", ShopifyAccessToken: "token"}
	client, err := newClient(clientParams{Config: cfg, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}
