package middleware

import (
	"net/http"
	"time"

	"gestaocontratos/internal/pkg/logger"
)

// requisicaoLenta é o limite acima do qual a requisição é registrada como lenta.
const requisicaoLenta = 200 * time.Millisecond

// statusRecorder guarda o status escrito pelo handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Unwrap permite que http.ResponseController alcance o writer original (Flush no SSE).
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// RequestLogger registra método, caminho, status e duração de cada requisição.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			latency := time.Since(start)
			fields := map[string]interface{}{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"latency_ms": latency.Milliseconds(),
			}
			log.Info("Requisição atendida.", fields)

			if latency > requisicaoLenta {
				log.Warn("Requisição lenta.", fields)
			}
		})
	}
}
