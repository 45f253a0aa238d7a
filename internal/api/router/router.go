package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gestaocontratos/config"
	_ "gestaocontratos/docs" // especificação Swagger registrada no init
	"gestaocontratos/internal/api/contrato"
	"gestaocontratos/internal/api/exportacao"
	"gestaocontratos/internal/api/painel"
	"gestaocontratos/internal/pkg/cache"
	"gestaocontratos/internal/pkg/logger"
	"gestaocontratos/internal/pkg/middleware"
	"gestaocontratos/internal/web"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(
	contratoHandler *contrato.Handler,
	painelHandler *painel.Handler,
	exportHandler *exportacao.Handler,
	webHandler *web.Handler,
	cacheClient cache.Client,
	cfg *config.Config,
	reg *prometheus.Registry,
	log logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	// --- 1. Health Check, métricas e documentação ---
	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. API JSON (v1) ---
	contratoHandler.Register(r)
	painelHandler.Register(r)
	exportHandler.Register(r)

	// --- 3. Telas ---
	webHandler.Register(r)

	// --- 4. Middlewares globais ---
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.NewMetrics(reg).Middleware)
	if cacheClient != nil {
		r.Use(middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, log))
	}

	// CORS fica por fora do mux para responder o preflight (OPTIONS) antes do roteamento.
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})
	return c.Handler(r)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
