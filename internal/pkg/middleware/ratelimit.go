package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"gestaocontratos/internal/pkg/cache"
	"gestaocontratos/internal/pkg/logger"
)

// RateLimiter limita as requisições por IP em janelas fixas, com contadores no cache.
// Se o cache falhar a requisição segue: a limitação nunca derruba o painel.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			// INCR é atômico: cada requisição recebe uma posição única na janela.
			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limit indisponível.", map[string]interface{}{"ip": ip, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				// Primeira requisição da janela: o contador expira ao fim do período.
				if err := client.Expire(ctx, key, duration); err != nil {
					log.Warn("Falha ao definir janela de rate limit.", map[string]interface{}{"ip": ip, "error": err.Error()})
				}
			}

			if count > int64(limit) {
				log.Debug("Rate limit excedido.", map[string]interface{}{"ip": ip, "count": count})
				http.Error(w, "Limite de requisições excedido", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
