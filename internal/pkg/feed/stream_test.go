package feed_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/pkg/feed"
)

func TestStream_NextEntregaSnapshots(t *testing.T) {
	lister := &fakeLister{}
	lister.set(domain.Contrato{ID: "1"})
	broker := feed.NewBroker(lister, nil, newTestLogger())

	st, err := broker.Stream(context.Background())
	require.NoError(t, err)
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	lista, err := st.Next(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 1)

	lister.set(domain.Contrato{ID: "1"}, domain.Contrato{ID: "2"})
	broker.Notify(ctx)

	lista, err = st.Next(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}

func TestStream_NextRespeitaContexto(t *testing.T) {
	broker := feed.NewBroker(&fakeLister{}, nil, newTestLogger())
	st, err := broker.Stream(context.Background())
	require.NoError(t, err)
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	_, err = st.Next(ctx)
	cancel()
	require.NoError(t, err)

	curto, cancelCurto := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelCurto()
	_, err = st.Next(curto)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStream_FalhaDeReleituraNaoEncerra(t *testing.T) {
	lister := &fakeLister{}
	broker := feed.NewBroker(lister, nil, newTestLogger())
	st, err := broker.Stream(context.Background())
	require.NoError(t, err)
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = st.Next(ctx)
	require.NoError(t, err)

	lister.fail(errors.New("timeout"))
	broker.Refresh()
	_, err = st.Next(ctx)
	assert.EqualError(t, err, "timeout")

	lister.set(domain.Contrato{ID: "3"})
	broker.Refresh()
	lista, err := st.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3", lista[0].ID)
}

func TestStream_CloseEncerraNext(t *testing.T) {
	broker := feed.NewBroker(&fakeLister{}, nil, newTestLogger())
	st, err := broker.Stream(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = st.Next(ctx)
	require.NoError(t, err)

	st.Close()
	_, err = st.Next(ctx)
	assert.ErrorIs(t, err, feed.ErrStreamEncerrado)
}
