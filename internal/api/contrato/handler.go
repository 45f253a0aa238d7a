package contrato

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gestaocontratos/internal/api/resposta"
	"gestaocontratos/internal/domain"
	apperror "gestaocontratos/internal/errors"
	"gestaocontratos/internal/pkg/logger"
)

// ContratoService define o contrato que o Handler espera da camada de Serviço.
type ContratoService interface {
	CreateContrato(ctx context.Context, contrato domain.Contrato) (domain.Contrato, error)
	GetContrato(ctx context.Context, id string) (domain.Contrato, error)
	ListContratos(ctx context.Context) ([]domain.Contrato, error)
	UpdateContrato(ctx context.Context, id string, contrato domain.Contrato) (domain.Contrato, error)
	DeleteContrato(ctx context.Context, id string) error
}

// Handler agrupa todos os métodos de Handler de contratos.
type Handler struct {
	Service ContratoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ContratoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// Register registra as rotas /v1/contratos no roteador.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/v1/contratos", h.ListContratosHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/contratos", h.CreateContratoHandler).Methods(http.MethodPost)
	r.HandleFunc("/v1/contratos/{id}", h.GetContratoHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/contratos/{id}", h.UpdateContratoHandler).Methods(http.MethodPut)
	r.HandleFunc("/v1/contratos/{id}", h.DeleteContratoHandler).Methods(http.MethodDelete)
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	resposta.Escrever(w, r, h.Logger, data, err, successStatus)
}

// CreateContratoHandler lida com a requisição POST /v1/contratos.
// @Summary Cria um novo contrato
// @Description Cria um contrato. O ID é atribuído pelo sistema.
// @Tags contratos
// @Accept json
// @Produce json
// @Param contrato body domain.Contrato true "Dados do contrato"
// @Success 201 {object} domain.Contrato "Contrato criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou cliente não informado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /contratos [post]
func (h *Handler) CreateContratoHandler(w http.ResponseWriter, r *http.Request) {
	var contrato domain.Contrato
	if err := json.NewDecoder(r.Body).Decode(&contrato); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	criado, err := h.Service.CreateContrato(r.Context(), contrato)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, criado, nil, http.StatusCreated)
}

// GetContratoHandler lida com a requisição GET /v1/contratos/{id}.
// @Summary Obtém um contrato por ID
// @Tags contratos
// @Produce json
// @Param id path string true "ID do Contrato"
// @Success 200 {object} domain.Contrato "Contrato encontrado"
// @Failure 404 {object} domain.ErrorResponse "Contrato não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /contratos/{id} [get]
func (h *Handler) GetContratoHandler(w http.ResponseWriter, r *http.Request) {
	contrato, err := h.Service.GetContrato(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, contrato, nil, http.StatusOK)
}

// ListContratosHandler lida com a requisição GET /v1/contratos.
// @Summary Lista todos os contratos
// @Description Retorna a coleção completa, sem filtro.
// @Tags contratos
// @Produce json
// @Success 200 {array} domain.Contrato "Lista de contratos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /contratos [get]
func (h *Handler) ListContratosHandler(w http.ResponseWriter, r *http.Request) {
	contratos, err := h.Service.ListContratos(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, contratos, nil, http.StatusOK)
}

// UpdateContratoHandler lida com a requisição PUT /v1/contratos/{id}.
// @Summary Atualiza um contrato
// @Description Sobrescreve todos os campos do contrato. O ID não pode ser alterado.
// @Tags contratos
// @Accept json
// @Produce json
// @Param id path string true "ID do Contrato"
// @Param contrato body domain.Contrato true "Dados do contrato"
// @Success 200 {object} domain.Contrato "Contrato atualizado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Contrato não encontrado"
// @Failure 409 {object} domain.ErrorResponse "ID divergente"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /contratos/{id} [put]
func (h *Handler) UpdateContratoHandler(w http.ResponseWriter, r *http.Request) {
	var contrato domain.Contrato
	if err := json.NewDecoder(r.Body).Decode(&contrato); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	atualizado, err := h.Service.UpdateContrato(r.Context(), mux.Vars(r)["id"], contrato)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, atualizado, nil, http.StatusOK)
}

// DeleteContratoHandler lida com a requisição DELETE /v1/contratos/{id}.
// @Summary Exclui um contrato
// @Tags contratos
// @Param id path string true "ID do Contrato"
// @Success 204 "Nenhum conteúdo"
// @Failure 404 {object} domain.ErrorResponse "Contrato não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /contratos/{id} [delete]
func (h *Handler) DeleteContratoHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteContrato(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, nil, nil, http.StatusNoContent)
}
