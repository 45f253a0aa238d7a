package painelservice

import (
	"context"
	"time"

	"gestaocontratos/internal/domain"
	apperror "gestaocontratos/internal/errors"
	"gestaocontratos/internal/pkg/feed"
	"gestaocontratos/internal/pkg/logger"
)

// Lister é a leitura completa da coleção.
type Lister interface {
	ListContratos(ctx context.Context) ([]domain.Contrato, error)
}

// Assinante abre uma assinatura ao vivo da coleção.
type Assinante interface {
	Stream(ctx context.Context) (*feed.Stream, error)
}

// Service monta o painel a partir da coleção atual ou de uma assinatura ao vivo.
type Service struct {
	lister    Lister
	assinante Assinante
	logger    logger.Logger
	agora     func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço do Painel.
func NewService(lister Lister, assinante Assinante, logger logger.Logger) *Service {
	return &Service{lister: lister, assinante: assinante, logger: logger, agora: time.Now}
}

// Painel lê a coleção uma vez e devolve a visão com o filtro informado.
func (s *Service) Painel(ctx context.Context, filtro string) (Visao, error) {
	registros, err := s.lister.ListContratos(ctx)
	if err != nil {
		return Visao{}, err
	}
	estado := NovoEstado(filtro)
	estado.Substituir(registros)
	return estado.Renderizar(s.agora()), nil
}

// Fluxo é um painel ao vivo: cada chamada a Next espera o próximo snapshot.
type Fluxo struct {
	stream *feed.Stream
	estado *Estado
	agora  func() time.Time
}

// Acompanhar abre um painel ao vivo com o filtro informado. Feche com Close.
func (s *Service) Acompanhar(ctx context.Context, filtro string) (*Fluxo, error) {
	if s.assinante == nil {
		return nil, apperror.NewInternalError("Atualização ao vivo indisponível.", nil)
	}
	stream, err := s.assinante.Stream(ctx)
	if err != nil {
		s.logger.Error("Falha ao assinar contratos para o painel.", err)
		return nil, err
	}
	return &Fluxo{stream: stream, estado: NovoEstado(filtro), agora: s.agora}, nil
}

// Next devolve a visão do próximo snapshot. Erros de releitura não encerram o fluxo;
// feed.ErrStreamEncerrado ou o erro do contexto indicam o fim.
func (f *Fluxo) Next(ctx context.Context) (Visao, error) {
	registros, err := f.stream.Next(ctx)
	if err != nil {
		return Visao{}, err
	}
	f.estado.Substituir(registros)
	return f.estado.Renderizar(f.agora()), nil
}

// Close encerra a assinatura.
func (f *Fluxo) Close() {
	f.stream.Close()
}
