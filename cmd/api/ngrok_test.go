package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, attempts int) {
	t.Helper()
	prevAttempts, prevDelay := maxAttempts, retryDelay
	maxAttempts, retryDelay = attempts, time.Millisecond
	t.Cleanup(func() { maxAttempts, retryDelay = prevAttempts, prevDelay })
}

func TestDetectNgrokURL(t *testing.T) {
	t.Run("prefers https tunnel", func(t *testing.T) {
		fastRetries(t, 3)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tunnels", r.URL.Path)
			w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer srv.Close()

		url, err := detectNgrokURL(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "https://a.ngrok.io", url)
	})

	t.Run("waits for tunnels", func(t *testing.T) {
		fastRetries(t, 3)
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.Write([]byte(`{"tunnels":[]}`))
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://b.ngrok.io","proto":"http"}]}`))
		}))
		defer srv.Close()

		url, err := detectNgrokURL(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "http://b.ngrok.io", url)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("gives up without tunnels", func(t *testing.T) {
		fastRetries(t, 2)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[]}`))
		}))
		defer srv.Close()

		_, err := detectNgrokURL(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "no active tunnels after 2 attempts")
	})
}
