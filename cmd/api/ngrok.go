package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Overridden in tests.
var (
	maxAttempts = 10
	retryDelay  = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS tunnel URL.
// It retries up to maxAttempts times, retryDelay apart, while ngrok starts.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	url := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create ngrok API request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			if attempt < maxAttempts {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(retryDelay):
					continue
				}
			}
			return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", maxAttempts, err)
		}
		var tunnels ngrokTunnelsResponse
		err = json.NewDecoder(resp.Body).Decode(&tunnels)
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
		}

		// Prefer HTTPS tunnels
		for _, t := range tunnels.Tunnels {
			if t.Proto == "https" {
				return t.PublicURL, nil
			}
		}

		// Fallback: any tunnel
		if len(tunnels.Tunnels) > 0 {
			return tunnels.Tunnels[0].PublicURL, nil
		}

		// No tunnels yet, ngrok is still starting
		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}

	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", maxAttempts)
}
