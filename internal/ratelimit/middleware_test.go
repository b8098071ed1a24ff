package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	allowed bool
	err     error
	lastKey string
}

func (s *stubLimiter) Check(_ context.Context, key string) (bool, error) {
	s.lastKey = key
	return s.allowed, s.err
}

func doGated(t *testing.T, limiter Limiter) (*httptest.ResponseRecorder, *bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/u1", nil)
	req.RemoteAddr = "203.0.113.9:51234"
	recorder := httptest.NewRecorder()

	Middleware(limiter, log)(next).ServeHTTP(recorder, req)
	return recorder, &reached
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	return body["error"]
}

func TestMiddleware_AllowedPassesThrough(t *testing.T) {
	limiter := &stubLimiter{allowed: true}

	recorder, reached := doGated(t, limiter)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, *reached)
	assert.Equal(t, "203.0.113.9", limiter.lastKey, "quota keys on the client host, port stripped")
}

func TestMiddleware_ExhaustedIs429(t *testing.T) {
	limiter := &stubLimiter{allowed: false}

	recorder, reached := doGated(t, limiter)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.False(t, *reached, "downstream handler must not run once the quota is spent")
	assert.Equal(t, "Too many requests, please try again later.", decodeError(t, recorder))
}

func TestMiddleware_CheckErrorFailsClosed(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis: connection refused")}

	recorder, reached := doGated(t, limiter)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.False(t, *reached)
	assert.Equal(t, "rate limit check failed", decodeError(t, recorder))
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		expected   string
	}{
		{name: "host and port", remoteAddr: "192.0.2.1:8080", expected: "192.0.2.1"},
		{name: "ipv6 host and port", remoteAddr: "[2001:db8::1]:443", expected: "2001:db8::1"},
		{name: "bare host", remoteAddr: "192.0.2.1", expected: "192.0.2.1"},
		{name: "empty", remoteAddr: "", expected: "unknown"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Identifier(test.remoteAddr))
		})
	}
}
