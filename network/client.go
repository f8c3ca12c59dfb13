// Package network provides a pre-configured, optimized HTTP client for Doodstream communication.
package network

import (
	"net/http"
	"time"

	"github.com/FEAR939/Hikari-DoodStream/key"
	"github.com/spf13/viper"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// It is configured with increased concurrency limits and reasonable timeouts tailored for scraping workflows.
// Per-request deadlines are enforced with context timeouts by the callers, not here.
var Client = &http.Client{
	Transport: newTransport(),
}

// Setup swaps the transport for the TLS-fingerprint-spoofing variant when enabled in configuration.
// Must run after config.Setup.
func Setup() {
	if viper.GetBool(key.NetworkTLSSpoof) {
		Client.Transport = newSpoofedTransport()
	}
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
