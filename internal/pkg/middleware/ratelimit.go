package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"goyard/internal/domain"
	"goyard/internal/pkg/cache"
	"goyard/internal/pkg/logger"
)

// RateLimiter limita as requisições por IP em janelas fixas, com contadores no Redis.
// Se o cache estiver indisponível a requisição segue (fail-open) e o erro é registrado.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip

			count, err := client.Incr(r.Context(), key, window)
			if err != nil {
				if err != cache.ErrCacheDisabled {
					log.Warn("Rate limit indisponível, requisição liberada.", map[string]interface{}{"error": err.Error()})
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			if count > int64(limit) {
				log.Warn("Rate limit excedido.", map[string]interface{}{"ip": ip, "count": count})
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(domain.ErrorResponse{
					Message:  "Limite de requisições excedido. Tente novamente mais tarde.",
					Category: "RATE_LIMITED",
				})
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
