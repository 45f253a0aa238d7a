package exportacao

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gestaocontratos/internal/api/resposta"
	"gestaocontratos/internal/domain"
	apperror "gestaocontratos/internal/errors"
	"gestaocontratos/internal/export"
	"gestaocontratos/internal/pkg/logger"
)

const (
	tipoXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	tipoPDF  = "application/pdf"
)

// Lister é a leitura completa da coleção. As exportações ignoram o filtro do painel.
type Lister interface {
	ListContratos(ctx context.Context) ([]domain.Contrato, error)
}

// Handler serve os arquivos de exportação.
type Handler struct {
	Service Lister
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler de exportações.
func NewHandler(svc Lister, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Register registra as rotas /v1/exportacoes no roteador.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/v1/exportacoes/"+export.NomePlanilha, h.PlanilhaHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/exportacoes/"+export.NomeDocumento, h.DocumentoHandler).Methods(http.MethodGet)
}

// PlanilhaHandler lida com a requisição GET /v1/exportacoes/contratos.xlsx.
// @Summary Exporta os contratos em planilha
// @Tags exportacoes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "contratos.xlsx"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /exportacoes/contratos.xlsx [get]
func (h *Handler) PlanilhaHandler(w http.ResponseWriter, r *http.Request) {
	h.exportar(w, r, export.NomePlanilha, tipoXLSX, export.Planilha)
}

// DocumentoHandler lida com a requisição GET /v1/exportacoes/contratos.pdf.
// @Summary Exporta os contratos em PDF
// @Tags exportacoes
// @Produce application/pdf
// @Success 200 {file} file "contratos.pdf"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /exportacoes/contratos.pdf [get]
func (h *Handler) DocumentoHandler(w http.ResponseWriter, r *http.Request) {
	h.exportar(w, r, export.NomeDocumento, tipoPDF, export.Documento)
}

func (h *Handler) exportar(w http.ResponseWriter, r *http.Request, nome, tipo string, gerar func([]domain.Contrato) ([]byte, error)) {
	contratos, err := h.Service.ListContratos(r.Context())
	if err != nil {
		resposta.Escrever(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	arquivo, err := gerar(contratos)
	if err != nil {
		resposta.Escrever(w, r, h.Logger, nil, apperror.NewInternalError("Falha ao gerar "+nome, err), http.StatusOK)
		return
	}

	h.Logger.Info("Exportação gerada.", map[string]interface{}{"arquivo": nome, "contratos": len(contratos), "bytes": len(arquivo)})
	w.Header().Set("Content-Type", tipo)
	w.Header().Set("Content-Disposition", `attachment; filename="`+nome+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(arquivo)))
	w.WriteHeader(http.StatusOK)
	w.Write(arquivo)
}
