package feed

import (
	"context"
	"errors"

	"gestaocontratos/internal/domain"
)

// ErrStreamEncerrado é devolvido por Next depois que a assinatura termina.
var ErrStreamEncerrado = errors.New("feed: assinatura encerrada")

// Stream expõe uma assinatura como uma sequência de snapshots consumida com Next.
// Só o snapshot mais recente fica guardado: quem consome devagar pula os intermediários.
type Stream struct {
	sub    *Subscription
	ultimo chan []domain.Contrato
	falha  chan error
}

// Stream assina a coleção e devolve o handle para consumo sob demanda.
func (b *Broker) Stream(ctx context.Context) (*Stream, error) {
	st := &Stream{
		ultimo: make(chan []domain.Contrato, 1),
		falha:  make(chan error, 1),
	}
	sub, err := b.Subscribe(ctx, st.publicar, st.registrarFalha)
	if err != nil {
		return nil, err
	}
	st.sub = sub
	return st, nil
}

// publicar e registrarFalha rodam só na goroutine da assinatura, então o envio
// depois de esvaziar o canal nunca bloqueia.
func (st *Stream) publicar(lista []domain.Contrato) {
	select {
	case <-st.ultimo:
	default:
	}
	st.ultimo <- lista
}

func (st *Stream) registrarFalha(err error) {
	select {
	case <-st.falha:
	default:
	}
	st.falha <- err
}

// Next espera o próximo snapshot. Uma falha de releitura é devolvida como erro, mas a
// assinatura continua ativa. Depois do fim da assinatura devolve ErrStreamEncerrado.
func (st *Stream) Next(ctx context.Context) ([]domain.Contrato, error) {
	select {
	case lista := <-st.ultimo:
		return lista, nil
	default:
	}

	select {
	case lista := <-st.ultimo:
		return lista, nil
	case err := <-st.falha:
		return nil, err
	case <-st.sub.Done():
		return nil, ErrStreamEncerrado
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close cancela a assinatura. Next passa a devolver ErrStreamEncerrado.
func (st *Stream) Close() {
	st.sub.Cancel()
}
