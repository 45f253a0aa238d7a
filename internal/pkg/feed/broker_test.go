package feed_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/pkg/cache"
	"gestaocontratos/internal/pkg/feed"
	"gestaocontratos/internal/pkg/logger"
)

// fakeLister devolve o conteúdo atual de uma coleção em memória.
type fakeLister struct {
	mu        sync.Mutex
	contratos []domain.Contrato
	err       error
}

func (f *fakeLister) ListContratos(ctx context.Context) ([]domain.Contrato, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Contrato(nil), f.contratos...), nil
}

func (f *fakeLister) set(c ...domain.Contrato) {
	f.mu.Lock()
	f.contratos = c
	f.err = nil
	f.mu.Unlock()
}

func (f *fakeLister) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("error")
}

func receber(t *testing.T, ch <-chan []domain.Contrato) []domain.Contrato {
	t.Helper()
	select {
	case lista := <-ch:
		return lista
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot não entregue")
		return nil
	}
}

func TestSubscribe_EntregaSnapshotInicialEAlteracoes(t *testing.T) {
	lister := &fakeLister{}
	lister.set(domain.Contrato{ID: "1", Cliente: "Alfa"})
	broker := feed.NewBroker(lister, nil, newTestLogger())

	snapshots := make(chan []domain.Contrato, 4)
	sub, err := broker.Subscribe(context.Background(), func(l []domain.Contrato) { snapshots <- l }, nil)
	require.NoError(t, err)
	defer sub.Cancel()

	assert.Len(t, receber(t, snapshots), 1)

	lister.set(domain.Contrato{ID: "1", Cliente: "Alfa"}, domain.Contrato{ID: "2", Cliente: "Beta"})
	broker.Notify(context.Background())

	lista := receber(t, snapshots)
	require.Len(t, lista, 2)
	assert.Equal(t, "Beta", lista[1].Cliente)
}

func TestSubscribe_FalhaInicialNaoCriaAssinatura(t *testing.T) {
	lister := &fakeLister{}
	lister.fail(errors.New("banco indisponível"))
	broker := feed.NewBroker(lister, nil, newTestLogger())

	sub, err := broker.Subscribe(context.Background(), func([]domain.Contrato) { t.Fatal("callback inesperado") }, nil)
	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestSubscribe_FalhaNaReleituraChamaOnError(t *testing.T) {
	lister := &fakeLister{}
	broker := feed.NewBroker(lister, nil, newTestLogger())

	snapshots := make(chan []domain.Contrato, 4)
	erros := make(chan error, 1)
	sub, err := broker.Subscribe(context.Background(),
		func(l []domain.Contrato) { snapshots <- l },
		func(err error) { erros <- err })
	require.NoError(t, err)
	defer sub.Cancel()
	receber(t, snapshots)

	lister.fail(errors.New("timeout"))
	broker.Refresh()

	select {
	case err := <-erros:
		assert.EqualError(t, err, "timeout")
	case <-time.After(2 * time.Second):
		t.Fatal("onError não chamado")
	}
}

// listerComEscrita simula uma escrita que termina logo depois da leitura inicial.
type listerComEscrita struct {
	fakeLister
	broker  *feed.Broker
	chamado bool
}

func (l *listerComEscrita) ListContratos(ctx context.Context) ([]domain.Contrato, error) {
	lista, err := l.fakeLister.ListContratos(ctx)
	if err == nil && !l.chamado {
		l.chamado = true
		l.set(domain.Contrato{ID: "1", Cliente: "Alfa"}, domain.Contrato{ID: "2", Cliente: "Beta"})
		l.broker.Notify(ctx)
	}
	return lista, err
}

func TestSubscribe_AlteracaoDuranteLeituraInicialEhEntregue(t *testing.T) {
	lister := &listerComEscrita{}
	lister.set(domain.Contrato{ID: "1", Cliente: "Alfa"})
	broker := feed.NewBroker(lister, nil, newTestLogger())
	lister.broker = broker

	snapshots := make(chan []domain.Contrato, 4)
	sub, err := broker.Subscribe(context.Background(), func(l []domain.Contrato) { snapshots <- l }, nil)
	require.NoError(t, err)
	defer sub.Cancel()

	assert.Len(t, receber(t, snapshots), 1)
	assert.Len(t, receber(t, snapshots), 2)
}

func TestCancel_NenhumCallbackDepoisDeRetornar(t *testing.T) {
	lister := &fakeLister{}
	broker := feed.NewBroker(lister, nil, newTestLogger())

	var mu sync.Mutex
	cancelado := false
	chamadasDepois := 0
	primeiro := make(chan struct{}, 1)

	sub, err := broker.Subscribe(context.Background(), func([]domain.Contrato) {
		mu.Lock()
		if cancelado {
			chamadasDepois++
		}
		mu.Unlock()
		select {
		case primeiro <- struct{}{}:
		default:
		}
	}, nil)
	require.NoError(t, err)
	<-primeiro

	for i := 0; i < 20; i++ {
		broker.Refresh()
	}
	sub.Cancel()
	mu.Lock()
	cancelado = true
	mu.Unlock()

	for i := 0; i < 20; i++ {
		broker.Refresh()
	}
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, chamadasDepois)

	select {
	case <-sub.Done():
	default:
		t.Fatal("Done deveria estar fechado após Cancel")
	}
}

func TestSubscribe_EncerraComContexto(t *testing.T) {
	broker := feed.NewBroker(&fakeLister{}, nil, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := broker.Subscribe(ctx, func([]domain.Contrato) {}, nil)
	require.NoError(t, err)
	cancel()

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("assinatura não terminou com o contexto")
	}
	sub.Cancel()
}

func TestListen_PropagaAlteracoesEntreInstancias(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lister := &fakeLister{}
	pubsub := cache.NewMemoryClient()
	instanciaA := feed.NewBroker(lister, pubsub, newTestLogger())
	instanciaB := feed.NewBroker(lister, pubsub, newTestLogger())
	require.NoError(t, instanciaB.Listen(ctx))

	snapshots := make(chan []domain.Contrato, 4)
	sub, err := instanciaB.Subscribe(ctx, func(l []domain.Contrato) { snapshots <- l }, nil)
	require.NoError(t, err)
	defer sub.Cancel()
	assert.Empty(t, receber(t, snapshots))

	lister.set(domain.Contrato{ID: "9", Cliente: "Gama"})
	instanciaA.Notify(ctx)

	lista := receber(t, snapshots)
	require.Len(t, lista, 1)
	assert.Equal(t, "Gama", lista[0].Cliente)
}
