package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "goarmazem/internal/errors"
	"goarmazem/internal/pkg/cache"
	"goarmazem/internal/pkg/logger"
)

// RateLimiter limita cada IP a limit requisições por janela de duration.
// Se o cache falhar a requisição passa e o erro é registrado.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			switch {
			case errors.Is(err, cache.ErrCacheMiss):
				if err := client.Set(ctx, key, 1, duration); err != nil {
					log.Error("Falha ao iniciar contador de rate limit.", err)
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			case err != nil:
				log.Error("Falha ao consultar rate limit; requisição liberada.", err)
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				log.Warn("Rate limit excedido.", map[string]interface{}{"ip": ip, "limit": limit})
				writeError(w, apperror.NewRateLimitError("Limite de requisições excedido. Tente novamente mais tarde."))
				return
			}

			if _, err := client.Incr(ctx, key); err != nil {
				log.Error("Falha ao incrementar rate limit.", err)
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}
