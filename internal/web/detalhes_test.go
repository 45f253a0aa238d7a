package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/web"
)

func rotulos(campos []web.Campo) []string {
	out := make([]string, 0, len(campos))
	for _, c := range campos {
		out = append(out, c.Rotulo)
	}
	return out
}

func TestDetalhes_SemContatos(t *testing.T) {
	campos := web.Detalhes(domain.Contrato{Cliente: "A", ValorGlobal: "1234.56", NecessitaArt: true})

	assert.Equal(t, []string{
		"Cliente", "Estado", "Valor Global", "Comissão", "Objeto", "Elevadores",
		"Plataformas", "Início", "Encerramento", "Necessita ART",
	}, rotulos(campos))
	assert.Equal(t, "R$ 1.234,56", campos[2].Valor)
	assert.Equal(t, "Sim", campos[9].Valor)
}

func TestDetalhes_ContatosSoQuandoPresentes(t *testing.T) {
	campos := web.Detalhes(domain.Contrato{Cliente: "A", Telefone: "(11) 3333-4444"})

	assert.Len(t, campos, 11)
	assert.Equal(t, web.Campo{Rotulo: "Telefone", Valor: "(11) 3333-4444"}, campos[10])
	assert.NotContains(t, rotulos(campos), "Gestor")
	assert.NotContains(t, rotulos(campos), "E-mail")
}
