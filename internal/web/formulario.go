package web

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"

	"gestaocontratos/internal/domain"
	apperror "gestaocontratos/internal/errors"
)

const (
	MensagemClienteObrigatorio = "Informe o nome do cliente."
	MensagemContratoCriado     = "Contrato criado com sucesso!"
	MensagemContratoAtualizado = "Contrato atualizado com sucesso!"
	MensagemErroAoSalvar       = "Erro ao salvar contrato. Tente novamente."
)

// Gravador é a parte do serviço de contratos usada pelo formulário.
type Gravador interface {
	CreateContrato(ctx context.Context, contrato domain.Contrato) (domain.Contrato, error)
	UpdateContrato(ctx context.Context, id string, contrato domain.Contrato) (domain.Contrato, error)
}

// Formulario é a cópia editável de um contrato enquanto o usuário preenche a tela.
type Formulario struct {
	Contrato domain.Contrato
	Erro     string
	Estados  []domain.Estado
}

// NovoFormulario cria o formulário a partir do contrato selecionado ou, com semente nil,
// com os valores padrão de um contrato novo.
func NovoFormulario(semente *domain.Contrato) *Formulario {
	c := domain.NovoContrato()
	if semente != nil {
		c = *semente
	}
	return &Formulario{Contrato: c, Estados: domain.Estados}
}

// Editando indica se o envio vai atualizar um contrato existente.
func (f *Formulario) Editando() bool {
	return f.Contrato.Persistido()
}

// Preencher copia os campos enviados pelo navegador. O ID nunca vem do formulário.
func (f *Formulario) Preencher(v url.Values) {
	c := &f.Contrato
	c.Cliente = v.Get("cliente")
	c.Estado = v.Get("estado")
	c.ValorGlobal = domain.Decimal(v.Get("valorGlobal"))
	c.ValorComissao = domain.Decimal(v.Get("valorComissao"))
	c.Objeto = v.Get("objeto")
	c.QtdElevadores = domain.Inteiro(v.Get("qtdElevadores"))
	c.QtdPlataformas = domain.Inteiro(v.Get("qtdPlataformas"))
	c.Inicio = v.Get("inicio")
	c.Encerramento = v.Get("encerramento")
	c.NecessitaArt = domain.ParseFlag(v.Get("necessitaArt"))
	c.Gestor = strings.TrimSpace(v.Get("gestor"))
	c.Telefone = strings.TrimSpace(v.Get("telefone"))
	c.Email = strings.TrimSpace(v.Get("email"))
}

// Enviar valida e grava o contrato: atualiza quando a semente tinha ID, cria caso contrário.
// Em caso de sucesso devolve o aviso para o painel. Em caso de falha o formulário fica com
// o campo Erro preenchido e os dados digitados intactos.
func (f *Formulario) Enviar(ctx context.Context, svc Gravador) (string, error) {
	f.Erro = ""
	if !f.Contrato.ClienteInformado() {
		f.Erro = MensagemClienteObrigatorio
		return "", apperror.NewValidationError(MensagemClienteObrigatorio)
	}

	var err error
	aviso := MensagemContratoCriado
	if f.Editando() {
		_, err = svc.UpdateContrato(ctx, f.Contrato.ID, f.Contrato)
		aviso = MensagemContratoAtualizado
	} else {
		_, err = svc.CreateContrato(ctx, f.Contrato)
	}
	if err != nil {
		f.Erro = MensagemErroAoSalvar
		var ve *apperror.ValidationError
		if stderrors.As(err, &ve) {
			f.Erro = ve.Msg
		}
		return "", err
	}
	return aviso, nil
}
