package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestaocontratos/internal/pkg/cache"
	"gestaocontratos/internal/pkg/logger"
	"gestaocontratos/internal/pkg/middleware"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

func TestRateLimiter_BloqueiaAcimaDoLimite(t *testing.T) {
	h := middleware.RateLimiter(cache.NewMemoryClient(), 2, time.Minute, logger.NewLogger("error"))(ok)

	codigos := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codigos = append(codigos, rr.Code)
	}

	assert.Equal(t, []int{http.StatusTeapot, http.StatusTeapot, http.StatusTooManyRequests}, codigos)
}

func TestRateLimiter_ContadorPorIP(t *testing.T) {
	h := middleware.RateLimiter(cache.NewMemoryClient(), 1, time.Minute, logger.NewLogger("error"))(ok)

	for _, ip := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimiter_RajadaConcorrenteRespeitaLimite(t *testing.T) {
	h := middleware.RateLimiter(cache.NewMemoryClient(), 10, time.Minute, logger.NewLogger("error"))(ok)

	var atendidas int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.9:4000"
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code == http.StatusTeapot {
				atomic.AddInt64(&atendidas, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 10, atendidas)
}

func TestRequestLogger_RegistraStatus(t *testing.T) {
	var buf bytes.Buffer
	h := middleware.RequestLogger(logger.NewLoggerWithWriter("info", &buf))(ok)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/painel", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	var entrada map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0], &entrada))
	campos := entrada["fields"].(map[string]interface{})
	assert.Equal(t, "/v1/painel", campos["path"])
	assert.Equal(t, float64(http.StatusTeapot), campos["status"])
}

func TestMetrics_AgrupaPorTemplateDaRota(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := mux.NewRouter()
	r.Handle("/v1/contratos/{id}", ok)
	r.Use(middleware.NewMetrics(reg).Middleware)

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/contratos/"+id, nil))
	}

	series, err := testutil.GatherAndCount(reg, "contratos_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)

	familias, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range familias {
		if f.GetName() != "contratos_http_requests_total" {
			continue
		}
		m := f.GetMetric()[0]
		assert.Equal(t, float64(3), m.GetCounter().GetValue())
		for _, l := range m.GetLabel() {
			if l.GetName() == "route" {
				assert.Equal(t, "/v1/contratos/{id}", l.GetValue())
			}
			if l.GetName() == "status" {
				assert.Equal(t, "418", l.GetValue())
			}
		}
	}
}
