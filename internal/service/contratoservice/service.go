package contratoservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gestaocontratos/internal/domain"
	apperror "gestaocontratos/internal/errors"
	"gestaocontratos/internal/pkg/logger"
)

// MensagemClienteObrigatorio é exibida quando o contrato chega sem cliente.
const MensagemClienteObrigatorio = "Informe o nome do cliente."

// ContratoRepository define o contrato que o Serviço de Contratos espera da camada de Persistência.
type ContratoRepository interface {
	Save(ctx context.Context, contrato domain.Contrato) (domain.Contrato, error)
	FindByID(ctx context.Context, id string) (domain.Contrato, error)
	FindAll(ctx context.Context) ([]domain.Contrato, error)
	Update(ctx context.Context, contrato domain.Contrato) (domain.Contrato, error)
	Delete(ctx context.Context, id string) error
}

// Notifier recebe um aviso depois de cada escrita bem-sucedida.
type Notifier interface {
	Notify(ctx context.Context)
}

// Service implementa as regras de negócio dos contratos.
type Service struct {
	repo     ContratoRepository
	notifier Notifier
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Contratos.
func NewService(repo ContratoRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SetNotifier liga o serviço ao feed de alterações. O broker depende do próprio
// serviço para reler a coleção, por isso a ligação é feita depois da construção.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *Service) notificar(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.Notify(ctx)
	}
}

// CreateContrato valida e grava um contrato novo, atribuindo um ID.
func (s *Service) CreateContrato(ctx context.Context, contrato domain.Contrato) (domain.Contrato, error) {
	s.logger.Debug("Iniciando criação de contrato no serviço.", map[string]interface{}{"cliente": contrato.Cliente})

	if contrato.Persistido() {
		return domain.Contrato{}, apperror.NewValidationError("O ID do contrato é atribuído pelo sistema e não pode ser informado.")
	}

	if err := s.normalizar(&contrato); err != nil {
		s.logger.Warn("Falha na validação do contrato.", map[string]interface{}{"cliente": contrato.Cliente, "error": err.Error()})
		return domain.Contrato{}, err
	}

	contrato.ID = uuid.New().String()

	criado, err := s.repo.Save(ctx, contrato)
	if err != nil {
		s.logger.Error("Falha ao criar contrato no repositório.", err)
		return domain.Contrato{}, apperror.NewInternalError("Falha interna ao criar contrato.", err)
	}

	s.notificar(ctx)
	s.logger.Info("Contrato criado com sucesso.", map[string]interface{}{"id": criado.ID, "cliente": criado.Cliente})
	return criado, nil
}

// GetContrato busca um contrato pelo ID.
func (s *Service) GetContrato(ctx context.Context, id string) (domain.Contrato, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Contrato{}, apperror.NewValidationError("O ID do contrato é obrigatório.")
	}

	contrato, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Contrato{}, s.traduzir(err, "Falha interna ao buscar contrato.")
	}
	return contrato, nil
}

// ListContratos devolve a coleção completa.
func (s *Service) ListContratos(ctx context.Context) ([]domain.Contrato, error) {
	contratos, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar todos os contratos no repositório.", err)
		return nil, apperror.NewInternalError("Falha interna ao buscar contratos.", err)
	}

	s.logger.Debug("Contratos encontrados.", map[string]interface{}{"count": len(contratos)})
	return contratos, nil
}

// UpdateContrato sobrescreve o contrato identificado por id.
// Um ID divergente no corpo é tratado como conflito: o ID nunca muda.
func (s *Service) UpdateContrato(ctx context.Context, id string, contrato domain.Contrato) (domain.Contrato, error) {
	s.logger.Debug("Iniciando atualização de contrato no serviço.", map[string]interface{}{"id": id})

	if strings.TrimSpace(id) == "" {
		return domain.Contrato{}, apperror.NewValidationError("O ID do contrato é obrigatório.")
	}
	if contrato.Persistido() && contrato.ID != id {
		s.logger.Warn("Tentativa de alterar o ID do contrato.", map[string]interface{}{"id": id, "id_corpo": contrato.ID})
		return domain.Contrato{}, apperror.NewConflictError("O ID de um contrato não pode ser alterado.")
	}

	if err := s.normalizar(&contrato); err != nil {
		s.logger.Warn("Falha na validação do contrato para atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Contrato{}, err
	}
	contrato.ID = id

	atualizado, err := s.repo.Update(ctx, contrato)
	if err != nil {
		return domain.Contrato{}, s.traduzir(err, "Falha interna ao atualizar contrato.")
	}

	s.notificar(ctx)
	s.logger.Info("Contrato atualizado com sucesso.", map[string]interface{}{"id": atualizado.ID})
	return atualizado, nil
}

// DeleteContrato remove um contrato. ID inexistente resulta em NotFoundError.
func (s *Service) DeleteContrato(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de contrato no serviço.", map[string]interface{}{"id": id})

	if strings.TrimSpace(id) == "" {
		return apperror.NewValidationError("O ID do contrato é obrigatório.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.traduzir(err, "Falha interna ao excluir contrato.")
	}

	s.notificar(ctx)
	s.logger.Info("Contrato excluído com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// normalizar aplica os padrões e valida os campos obrigatórios.
func (s *Service) normalizar(c *domain.Contrato) error {
	if !c.ClienteInformado() {
		return apperror.NewValidationError(MensagemClienteObrigatorio)
	}
	c.Cliente = strings.TrimSpace(c.Cliente)

	c.Estado = strings.ToUpper(strings.TrimSpace(c.Estado))
	if c.Estado == "" {
		c.Estado = domain.EstadoPadrao
	}
	if _, ok := domain.NomeEstado(c.Estado); !ok {
		return apperror.NewValidationError("Estado inválido: " + c.Estado + ".")
	}
	return nil
}

// traduzir mantém NotFoundError e embrulha qualquer outra falha como erro interno.
func (s *Service) traduzir(err error, msg string) error {
	if apperror.IsNotFound(err) {
		s.logger.Info("Contrato não encontrado.", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Error(msg, err)
	return apperror.NewInternalError(msg, err)
}
