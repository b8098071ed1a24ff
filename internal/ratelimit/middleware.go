package ratelimit

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// fallbackIdentifier keys the quota when no remote address is available.
const fallbackIdentifier = "unknown"

// checkTimeout bounds the admission check so a hung counter cannot stall
// every request behind it.
const checkTimeout = 2 * time.Second

// Identifier extracts the client identity used as the quota key.
func Identifier(remoteAddr string) string {
	if remoteAddr == "" {
		return fallbackIdentifier
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil || host == "" {
		return remoteAddr
	}
	return host
}

// Middleware gates every inbound request before routing. Over-quota clients
// get 429 and the downstream handler never runs. A failing counter answers
// 500: the gate fails closed rather than silently admitting.
func Middleware(limiter Limiter, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			checkCtx, cancel := context.WithTimeout(req.Context(), checkTimeout)
			defer cancel()

			identifier := Identifier(req.RemoteAddr)
			allowed, err := limiter.Check(checkCtx, identifier)
			if err != nil {
				log.WithError(err).Error("RateLimit.Check.Error")
				writeJSONError(w, http.StatusInternalServerError, "rate limit check failed")
				return
			}

			if !allowed {
				log.WithField("identifier", identifier).Info("RateLimit.Rejected")
				writeJSONError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
