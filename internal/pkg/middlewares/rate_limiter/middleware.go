package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dispatch/pkg/logger"

	"github.com/gorilla/mux"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Middleware отбивает запросы сверх лимита ответом 429. limit уходит
// клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if err := json.NewEncoder(w).Encode(errorResponse{
				Error:   "Too Many Requests",
				Message: "Rate limit exceeded. Try again later.",
			}); err != nil {
				log.With(logger.NewField("error", err)).Error("encode rate limit response")
			}
		})
	}
}
