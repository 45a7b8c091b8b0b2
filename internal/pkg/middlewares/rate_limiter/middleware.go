package rate_limiter

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"restaurant-admin/pkg/logger"
)

type rejection struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Middleware ограничивает запросы по IP клиента, burst отдается в X-RateLimit-Limit
func Middleware(log handlerLogger, burst int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientKey(r)
			if limiter.Allow(client) {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			route := mux.CurrentRoute(r)
			if route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("client", client),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			err := json.NewEncoder(w).Encode(rejection{
				Error:   "Too Many Requests",
				Message: "Rate limit exceeded. Try again later.",
			})
			if err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("encode JSON response")
			}
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
