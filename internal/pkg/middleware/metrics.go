package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics registra contagem e latência das requisições por rota.
// A rota é o template do mux ("/v1/contratos/{id}"), nunca o caminho com IDs.
type Metrics struct {
	requisicoes *prometheus.CounterVec
	latencia    *prometheus.HistogramVec
}

// NewMetrics cria os coletores e os registra em reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requisicoes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contratos_http_requests_total",
			Help: "Requisições HTTP atendidas, por método, rota e status.",
		}, []string{"method", "route", "status"}),
		latencia: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contratos_http_request_duration_seconds",
			Help:    "Latência das requisições HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.requisicoes, m.latencia)
	return m
}

// Middleware mede cada requisição roteada.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inicio := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		rota := "desconhecida"
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				rota = tpl
			}
		}
		m.requisicoes.WithLabelValues(r.Method, rota, strconv.Itoa(rec.status)).Inc()
		m.latencia.WithLabelValues(r.Method, rota).Observe(time.Since(inicio).Seconds())
	})
}
