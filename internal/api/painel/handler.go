package painel

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gestaocontratos/internal/api/resposta"
	"gestaocontratos/internal/pkg/feed"
	"gestaocontratos/internal/pkg/logger"
	"gestaocontratos/internal/service/painelservice"
)

// intervaloBatimento mantém a conexão SSE aberta através de proxies ociosos.
const intervaloBatimento = 25 * time.Second

// PainelService define o contrato que o Handler espera da camada de Serviço.
type PainelService interface {
	Painel(ctx context.Context, filtro string) (painelservice.Visao, error)
	Acompanhar(ctx context.Context, filtro string) (*painelservice.Fluxo, error)
}

// Handler expõe o painel em JSON e como stream de eventos.
type Handler struct {
	Service   PainelService
	Logger    logger.Logger
	batimento time.Duration
}

// NewHandler cria uma nova instância do Handler do painel.
func NewHandler(svc PainelService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log, batimento: intervaloBatimento}
}

// Register registra as rotas /v1/painel no roteador.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/v1/painel", h.PainelHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/painel/stream", h.StreamHandler).Methods(http.MethodGet)
}

// PainelHandler lida com a requisição GET /v1/painel.
// @Summary Painel de contratos
// @Description Indicadores sobre a coleção completa e a tabela filtrada por cliente ou estado.
// @Tags painel
// @Produce json
// @Param filtro query string false "Texto de busca (cliente, sigla ou nome do estado)"
// @Success 200 {object} painelservice.Visao
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /painel [get]
func (h *Handler) PainelHandler(w http.ResponseWriter, r *http.Request) {
	visao, err := h.Service.Painel(r.Context(), r.URL.Query().Get("filtro"))
	if err != nil {
		resposta.Escrever(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	resposta.Escrever(w, r, h.Logger, visao, nil, http.StatusOK)
}

// StreamHandler lida com a requisição GET /v1/painel/stream.
// Envia um evento "painel" com a visão completa a cada alteração da coleção.
// @Summary Painel ao vivo (Server-Sent Events)
// @Tags painel
// @Produce text/event-stream
// @Param filtro query string false "Texto de busca"
// @Success 200 {object} painelservice.Visao "Evento 'painel' a cada snapshot"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /painel/stream [get]
func (h *Handler) StreamHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fluxo, err := h.Service.Acompanhar(ctx, r.URL.Query().Get("filtro"))
	if err != nil {
		resposta.Escrever(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	defer fluxo.Close()

	rc := http.NewResponseController(w)
	// A conexão vive enquanto o cliente estiver olhando o painel.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for {
		espera, cancel := context.WithTimeout(ctx, h.batimento)
		visao, err := fluxo.Next(espera)
		cancel()

		switch {
		case err == nil:
			payload, jsonErr := json.Marshal(visao)
			if jsonErr != nil {
				h.Logger.Error("Falha ao codificar visão do painel.", jsonErr)
				return
			}
			if _, err := fmt.Fprintf(w, "event: painel\ndata: %s\n\n", payload); err != nil {
				return
			}
		case ctx.Err() != nil, stderrors.Is(err, feed.ErrStreamEncerrado):
			return
		case stderrors.Is(err, context.DeadlineExceeded):
			if _, err := fmt.Fprint(w, ": batimento\n\n"); err != nil {
				return
			}
		default:
			// Falha de releitura: o painel no navegador mantém o último snapshot.
			h.Logger.Warn("Stream do painel sem atualização.", map[string]interface{}{"error": err.Error()})
			if _, werr := fmt.Fprintf(w, "event: erro\ndata: %q\n\n", "Erro ao atualizar contratos."); werr != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
