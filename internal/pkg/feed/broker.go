// Package feed entrega a lista completa de contratos aos assinantes sempre que a coleção muda.
//
// Cada assinatura recebe um snapshot ao conectar e outro a cada alteração. Snapshots
// substituem o anterior por inteiro; alterações em rajada são coalescidas em uma única
// releitura. Alterações feitas em outras instâncias chegam pelo pub/sub do cache.
package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/pkg/cache"
	"gestaocontratos/internal/pkg/logger"
)

// CanalAlteracoes é o canal de pub/sub usado para avisar outras instâncias.
const CanalAlteracoes = "contratos:alterados"

// Lister é a leitura completa da coleção (fetchAll).
type Lister interface {
	ListContratos(ctx context.Context) ([]domain.Contrato, error)
}

// Broker mantém as assinaturas locais e faz a ponte com o pub/sub.
type Broker struct {
	lister Lister
	pubsub cache.Client // opcional
	logger logger.Logger
	origem string

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewBroker cria o broker. pubsub pode ser nil em uma instância única.
func NewBroker(lister Lister, pubsub cache.Client, log logger.Logger) *Broker {
	return &Broker{
		lister: lister,
		pubsub: pubsub,
		logger: log,
		origem: uuid.New().String(),
		subs:   make(map[*Subscription]struct{}),
	}
}

// Subscription é o handle de uma assinatura ativa.
type Subscription struct {
	broker *Broker
	wake   chan struct{}
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// Subscribe lê a coleção, entrega o snapshot inicial e continua entregando um snapshot
// novo a cada alteração até Cancel ou até ctx terminar.
//
// Os callbacks rodam em uma goroutine própria da assinatura, um por vez. onError é
// opcional e recebe as falhas de releitura; o snapshot anterior continua valendo.
// Falha na leitura inicial é devolvida diretamente e nenhuma assinatura é criada.
func (b *Broker) Subscribe(ctx context.Context, onChange func([]domain.Contrato), onError func(error)) (*Subscription, error) {
	s := &Subscription{
		broker: b,
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	// Registrada antes da leitura inicial: um Notify durante a leitura deixa um wake
	// pendente e o loop relê a coleção.
	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	inicial, err := b.lister.ListContratos(ctx)
	if err != nil {
		b.remove(s)
		return nil, err
	}

	go s.run(ctx, inicial, onChange, onError)
	return s, nil
}

func (s *Subscription) run(ctx context.Context, inicial []domain.Contrato, onChange func([]domain.Contrato), onError func(error)) {
	defer close(s.done)
	defer s.broker.remove(s)

	onChange(inicial)
	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case <-s.wake:
		}

		lista, err := s.broker.lister.ListContratos(ctx)

		// Cancel pode ter chegado durante a leitura.
		select {
		case <-s.stop:
			return
		default:
		}
		if err != nil {
			s.broker.logger.Error("Falha ao atualizar assinatura de contratos.", err)
			if onError != nil {
				onError(err)
			}
			continue
		}
		onChange(lista)
	}
}

// Cancel encerra a assinatura. Quando retorna, nenhum callback está rodando e nenhum
// outro será chamado. Não deve ser chamado de dentro do próprio callback.
func (s *Subscription) Cancel() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// Done é fechado quando a assinatura termina (Cancel ou fim do contexto).
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (b *Broker) remove(s *Subscription) {
	b.mu.Lock()
	delete(b.subs, s)
	b.mu.Unlock()
}

// Refresh acorda as assinaturas locais sem avisar outras instâncias.
func (b *Broker) Refresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for s := range b.subs {
		select {
		case s.wake <- struct{}{}:
		default:
			// Já há uma releitura pendente.
		}
	}
}

// Notify registra uma alteração na coleção: acorda as assinaturas locais e publica
// o aviso para as demais instâncias.
func (b *Broker) Notify(ctx context.Context) {
	b.Refresh()
	if b.pubsub == nil {
		return
	}
	if err := b.pubsub.Publish(ctx, CanalAlteracoes, b.origem); err != nil {
		b.logger.Warn("Falha ao publicar alteração de contratos.", map[string]interface{}{"error": err.Error()})
	}
}

// Listen assina o canal de alterações e acorda as assinaturas locais a cada aviso de
// outra instância. Retorna depois que a assinatura no canal está ativa; a escuta
// continua até ctx terminar.
func (b *Broker) Listen(ctx context.Context) error {
	if b.pubsub == nil {
		return nil
	}
	sub, err := b.pubsub.Subscribe(ctx, CanalAlteracoes)
	if err != nil {
		return err
	}

	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case origem, ok := <-sub.Messages():
				if !ok {
					return
				}
				if origem == b.origem {
					continue
				}
				b.logger.Debug("Alteração recebida de outra instância.", map[string]interface{}{"origem": origem})
				b.Refresh()
			}
		}
	}()
	return nil
}
