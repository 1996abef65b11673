package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistente-gestao/internal/middleware"
	"assistente-gestao/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newEngine(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/x", chain...)
	return r
}

func do(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	t.Run("open without key", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, "", nil)
		r := newEngine(mw, mw.Auth())
		assert.Equal(t, http.StatusOK, do(r, nil).Code)
	})

	mw := middleware.New(&mockLogger{}, "secret", nil)
	r := newEngine(mw, mw.Auth())

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"missing", nil, http.StatusUnauthorized},
		{"wrong", map[string]string{middleware.APIKeyHeader: "nope"}, http.StatusUnauthorized},
		{"header", map[string]string{middleware.APIKeyHeader: "secret"}, http.StatusOK},
		{"bearer", map[string]string{"Authorization": "Bearer secret"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, do(r, tt.header).Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	mw := middleware.New(&mockLogger{}, "", nil)

	var seen any
	r := newEngine(mw, mw.RequestLogger(), func(c *gin.Context) {
		seen = c.Request.Context().Value(log.RequestIDKey)
	})

	w := do(r, map[string]string{middleware.RequestIDHeader: "req-42"})
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "req-42", seen)

	w = do(r, nil)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(10)
	require.NotNil(t, limiter)

	mw := middleware.New(&mockLogger{}, "", limiter)
	r := newEngine(mw, mw.RateLimit())

	assert.Equal(t, http.StatusOK, do(r, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, nil).Code)
}

func TestRateLimiterPerKey(t *testing.T) {
	assert.Nil(t, middleware.NewRateLimiter(0))

	var disabled *middleware.RateLimiter
	assert.True(t, disabled.Allow("anyone"))

	limiter := middleware.NewRateLimiter(20)
	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	// 6 per minute: a fresh key gets a burst of 1 and refills every 10s.
	limiter := middleware.NewRateLimiter(6)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if limiter.Allow("chat-42") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
}
