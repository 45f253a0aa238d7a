// Package web serve as telas HTML do painel: lista com indicadores, formulário e detalhes.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"gestaocontratos/internal/domain"
	apperror "gestaocontratos/internal/errors"
	"gestaocontratos/internal/pkg/logger"
	"gestaocontratos/internal/service/painelservice"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	MensagemContratoExcluido  = "Contrato excluído com sucesso!"
	MensagemErroAoExcluir     = "Erro ao excluir contrato."
	MensagemExclusaoCancelada = "Exclusão não confirmada."
	MensagemNaoEncontrado     = "Contrato não encontrado."
	MensagemErroAoCarregar    = "Erro ao carregar contratos."
)

// avisos liga o código curto levado na URL do redirect à mensagem exibida no painel.
// Códigos desconhecidos não exibem nada.
var avisos = map[string]string{
	"criado":             MensagemContratoCriado,
	"atualizado":         MensagemContratoAtualizado,
	"excluido":           MensagemContratoExcluido,
	"erro-exclusao":      MensagemErroAoExcluir,
	"exclusao-cancelada": MensagemExclusaoCancelada,
	"nao-encontrado":     MensagemNaoEncontrado,
	"erro-carregar":      MensagemErroAoCarregar,
}

func codigoDoAviso(mensagem string) string {
	for codigo, m := range avisos {
		if m == mensagem {
			return codigo
		}
	}
	return ""
}

// ContratoService define o contrato que as telas esperam da camada de Serviço.
type ContratoService interface {
	Gravador
	GetContrato(ctx context.Context, id string) (domain.Contrato, error)
	DeleteContrato(ctx context.Context, id string) error
}

// PainelService monta a visão do painel.
type PainelService interface {
	Painel(ctx context.Context, filtro string) (painelservice.Visao, error)
}

// Handler agrupa as telas HTML.
type Handler struct {
	Contratos ContratoService
	Painel    PainelService
	Logger    logger.Logger
	paginas   map[string]*template.Template
}

// pagina é o dado entregue a todos os templates.
type pagina struct {
	Aviso      string
	Visao      painelservice.Visao
	Formulario *Formulario
	Contrato   domain.Contrato
	Campos     []Campo
}

// NewHandler cria o Handler e carrega os templates embutidos.
func NewHandler(contratos ContratoService, painel PainelService, log logger.Logger) (*Handler, error) {
	paginas := make(map[string]*template.Template)
	for _, nome := range []string{"painel", "formulario", "detalhes"} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+nome+".html")
		if err != nil {
			return nil, err
		}
		paginas[nome] = t
	}
	return &Handler{Contratos: contratos, Painel: painel, Logger: log, paginas: paginas}, nil
}

// Register registra as rotas das telas no roteador.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.PainelHandler).Methods(http.MethodGet)
	r.HandleFunc("/contratos/novo", h.NovoContratoHandler).Methods(http.MethodGet)
	r.HandleFunc("/contratos", h.CriarContratoHandler).Methods(http.MethodPost)
	r.HandleFunc("/contratos/{id}", h.DetalhesHandler).Methods(http.MethodGet)
	r.HandleFunc("/contratos/{id}/editar", h.EditarContratoHandler).Methods(http.MethodGet)
	r.HandleFunc("/contratos/{id}/editar", h.AtualizarContratoHandler).Methods(http.MethodPost)
	r.HandleFunc("/contratos/{id}/excluir", h.ExcluirContratoHandler).Methods(http.MethodPost)
}

func (h *Handler) render(w http.ResponseWriter, nome string, status int, dados pagina) {
	var buf bytes.Buffer
	if err := h.paginas[nome].ExecuteTemplate(&buf, "layout", dados); err != nil {
		h.Logger.Error("Falha ao renderizar página "+nome, err)
		http.Error(w, "Erro ao renderizar página", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// voltarAoPainel redireciona para o painel exibindo o aviso em um alert.
func voltarAoPainel(w http.ResponseWriter, r *http.Request, aviso string) {
	destino := "/"
	if codigo := codigoDoAviso(aviso); codigo != "" {
		destino += "?" + url.Values{"aviso": {codigo}}.Encode()
	}
	http.Redirect(w, r, destino, http.StatusSeeOther)
}

// PainelHandler lida com GET /.
func (h *Handler) PainelHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	visao, err := h.Painel.Painel(r.Context(), q.Get("filtro"))
	if err != nil {
		h.Logger.Error("Falha ao carregar painel.", err)
		visao = painelservice.NovoEstado(q.Get("filtro")).Renderizar(time.Now())
		h.render(w, "painel", http.StatusInternalServerError, pagina{Aviso: MensagemErroAoCarregar, Visao: visao})
		return
	}
	h.render(w, "painel", http.StatusOK, pagina{Aviso: avisos[q.Get("aviso")], Visao: visao})
}

// NovoContratoHandler lida com GET /contratos/novo.
func (h *Handler) NovoContratoHandler(w http.ResponseWriter, r *http.Request) {
	h.render(w, "formulario", http.StatusOK, pagina{Formulario: NovoFormulario(nil)})
}

// CriarContratoHandler lida com POST /contratos.
func (h *Handler) CriarContratoHandler(w http.ResponseWriter, r *http.Request) {
	h.enviar(w, r, NovoFormulario(nil))
}

// EditarContratoHandler lida com GET /contratos/{id}/editar.
func (h *Handler) EditarContratoHandler(w http.ResponseWriter, r *http.Request) {
	contrato, ok := h.carregar(w, r)
	if !ok {
		return
	}
	h.render(w, "formulario", http.StatusOK, pagina{Formulario: NovoFormulario(&contrato)})
}

// AtualizarContratoHandler lida com POST /contratos/{id}/editar.
func (h *Handler) AtualizarContratoHandler(w http.ResponseWriter, r *http.Request) {
	semente := domain.Contrato{ID: mux.Vars(r)["id"]}
	h.enviar(w, r, NovoFormulario(&semente))
}

func (h *Handler) enviar(w http.ResponseWriter, r *http.Request, f *Formulario) {
	if err := r.ParseForm(); err != nil {
		f.Erro = MensagemErroAoSalvar
		h.render(w, "formulario", http.StatusBadRequest, pagina{Formulario: f})
		return
	}
	f.Preencher(r.PostForm)

	aviso, err := f.Enviar(r.Context(), h.Contratos)
	if err != nil {
		status, _, _ := apperror.MapToHTTPStatus(err)
		if status >= http.StatusInternalServerError {
			h.Logger.Error("Falha ao salvar contrato.", err)
		}
		h.render(w, "formulario", status, pagina{Formulario: f, Aviso: f.Erro})
		return
	}
	voltarAoPainel(w, r, aviso)
}

// DetalhesHandler lida com GET /contratos/{id}.
func (h *Handler) DetalhesHandler(w http.ResponseWriter, r *http.Request) {
	contrato, ok := h.carregar(w, r)
	if !ok {
		return
	}
	h.render(w, "detalhes", http.StatusOK, pagina{Contrato: contrato, Campos: Detalhes(contrato)})
}

// ExcluirContratoHandler lida com POST /contratos/{id}/excluir. Exige confirmar=sim.
func (h *Handler) ExcluirContratoHandler(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("confirmar") != "sim" {
		voltarAoPainel(w, r, MensagemExclusaoCancelada)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.Contratos.DeleteContrato(r.Context(), id); err != nil {
		h.Logger.Error("Erro ao excluir contrato.", err)
		voltarAoPainel(w, r, MensagemErroAoExcluir)
		return
	}
	voltarAoPainel(w, r, MensagemContratoExcluido)
}

func (h *Handler) carregar(w http.ResponseWriter, r *http.Request) (domain.Contrato, bool) {
	contrato, err := h.Contratos.GetContrato(r.Context(), mux.Vars(r)["id"])
	if err == nil {
		return contrato, true
	}
	if apperror.IsNotFound(err) {
		voltarAoPainel(w, r, MensagemNaoEncontrado)
		return domain.Contrato{}, false
	}
	h.Logger.Error("Falha ao carregar contrato.", err)
	voltarAoPainel(w, r, MensagemErroAoCarregar)
	return domain.Contrato{}, false
}
