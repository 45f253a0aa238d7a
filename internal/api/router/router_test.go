package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestaocontratos/config"
	"gestaocontratos/internal/api/contrato"
	"gestaocontratos/internal/api/exportacao"
	"gestaocontratos/internal/api/painel"
	"gestaocontratos/internal/api/router"
	"gestaocontratos/internal/pkg/cache"
	"gestaocontratos/internal/pkg/database"
	"gestaocontratos/internal/pkg/feed"
	"gestaocontratos/internal/pkg/logger"
	"gestaocontratos/internal/repository/contratorepo"
	"gestaocontratos/internal/service/contratoservice"
	"gestaocontratos/internal/service/painelservice"
	"gestaocontratos/internal/web"
)

// montar liga a aplicação inteira sobre SQLite, como o main faz.
func montar(t *testing.T) http.Handler {
	t.Helper()
	log := logger.NewLogger("error")

	db, err := database.NewDB(database.DriverSQLite, filepath.Join(t.TempDir(), "contratos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, database.DriverSQLite, "up"))

	cacheClient := cache.NewMemoryClient()
	repo := contratorepo.NewContratoRepository(db, database.DriverSQLite, cacheClient, time.Minute, 5*time.Second, log)
	svc := contratoservice.NewService(repo, log)
	broker := feed.NewBroker(svc, cacheClient, log)
	svc.SetNotifier(broker)
	painelSvc := painelservice.NewService(svc, broker, log)

	webHandler, err := web.NewHandler(svc, painelSvc, log)
	require.NoError(t, err)

	cfg := &config.Config{
		RateLimitMaxRequests: 1000,
		RateLimitPeriod:      time.Minute,
		CORSOrigins:          []string{"*"},
	}
	return router.NewRouter(
		contrato.NewHandler(svc, log),
		painel.NewHandler(painelSvc, log),
		exportacao.NewHandler(svc, log),
		webHandler,
		cacheClient,
		cfg,
		prometheus.NewRegistry(),
		log,
	)
}

func executar(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestPing(t *testing.T) {
	rr := executar(montar(t), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestFluxoCompleto_CriarEConsultarPainel(t *testing.T) {
	h := montar(t)

	corpo := `{"cliente":"Condomínio Aurora","estado":"rj","valorGlobal":"1000","valorComissao":"50","qtdElevadores":"2"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contratos", strings.NewReader(corpo))
	req.Header.Set("Content-Type", "application/json")
	rr := executar(h, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var criado struct {
		ID     string `json:"id"`
		Estado string `json:"estado"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&criado))
	assert.NotEmpty(t, criado.ID)
	assert.Equal(t, "RJ", criado.Estado)

	rr = executar(h, httptest.NewRequest(http.MethodGet, "/v1/painel?filtro=janeiro", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var visao painelservice.Visao
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&visao))
	assert.Equal(t, 1, visao.Total)
	assert.Equal(t, 2, visao.Resumo.TotalElevadores)
	require.Len(t, visao.Linhas, 1)
	assert.Equal(t, "Rio de Janeiro", visao.Linhas[0].Estado)

	rr = executar(h, httptest.NewRequest(http.MethodGet, "/contratos/"+criado.ID, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Condomínio Aurora")
}

func TestCORS_RespondePreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/contratos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := executar(montar(t), req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwagger_ServeEspecificacao(t *testing.T) {
	rr := executar(montar(t), httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/contratos/{id}")
}

func TestMetrics_ExpoeContadores(t *testing.T) {
	h := montar(t)
	executar(h, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rr := executar(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `contratos_http_requests_total{method="GET",route="/ping",status="200"} 1`)
}

func TestRotaInexistente(t *testing.T) {
	rr := executar(montar(t), httptest.NewRequest(http.MethodGet, "/v1/desconhecida", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
