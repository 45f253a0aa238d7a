package painelservice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/service/painelservice"
)

var amostra = []domain.Contrato{
	{ID: "1", Cliente: "Condomínio Aurora", Estado: "SP"},
	{ID: "2", Cliente: "Shopping Norte", Estado: "RJ"},
	{ID: "3", Cliente: "Hospital Central", Estado: "MG"},
}

func ids(lista []domain.Contrato) []string {
	out := make([]string, 0, len(lista))
	for _, c := range lista {
		out = append(out, c.ID)
	}
	return out
}

func TestFiltrar_PorClienteSemDiferenciarCaixa(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(painelservice.Filtrar(amostra, "AURORA")))
}

func TestFiltrar_PorSiglaENomeDoEstado(t *testing.T) {
	assert.Equal(t, []string{"2"}, ids(painelservice.Filtrar(amostra, "rj")))
	assert.Equal(t, []string{"3"}, ids(painelservice.Filtrar(amostra, "minas")))
	assert.Equal(t, []string{"2"}, ids(painelservice.Filtrar(amostra, "Janeiro")))
}

func TestFiltrar_TextoVazioDevolveTudoNaOrdem(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, ids(painelservice.Filtrar(amostra, "")))
}

func TestFiltrar_SemCorrespondencia(t *testing.T) {
	assert.Empty(t, painelservice.Filtrar(amostra, "zzz"))
}

func TestCalcularResumo(t *testing.T) {
	agora := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	registros := []domain.Contrato{
		{Inicio: "2025-03-01", Encerramento: "2026-02-28", ValorGlobal: "1000", ValorComissao: "50", QtdElevadores: "2", QtdPlataformas: "1"},
		{Inicio: "2025-03-20", Encerramento: "2025-12-31", ValorGlobal: "500.5", ValorComissao: "abc", QtdElevadores: "x"},
		{Inicio: "2024-03-01", Encerramento: "2025-03-15", ValorGlobal: "999", ValorComissao: "10.25", QtdPlataformas: "3"},
		{Inicio: "", Encerramento: "2030-01-01", ValorGlobal: "123"},
	}

	r := painelservice.CalcularResumo(registros, agora)

	assert.InDelta(t, 1500.5, r.TotalVendasMes, 1e-9)
	// O segundo ainda não começou; o terceiro termina hoje e conta.
	assert.Equal(t, 2, r.ContratosAtivos)
	assert.InDelta(t, 60.25, r.ComissoesTotais, 1e-9)
	assert.Equal(t, 2, r.TotalElevadores)
	assert.Equal(t, 4, r.TotalPlataformas)
}

func TestCalcularResumo_ColecaoVazia(t *testing.T) {
	assert.Equal(t, painelservice.Resumo{}, painelservice.CalcularResumo(nil, time.Now()))
}

func TestEstado_RenderizarComFiltro(t *testing.T) {
	estado := painelservice.NovoEstado("norte")
	estado.Substituir([]domain.Contrato{
		{ID: "1", Cliente: "Shopping Norte", Estado: "RJ", ValorGlobal: "1234.56", ValorComissao: "10"},
		{ID: "2", Cliente: "Outro", Estado: "SP", ValorComissao: "5"},
	})

	v := estado.Renderizar(time.Now())

	require.Len(t, v.Linhas, 1)
	assert.Equal(t, "Rio de Janeiro", v.Linhas[0].Estado)
	assert.Equal(t, "R$ 1.234,56", v.Linhas[0].ValorGlobal)
	assert.Equal(t, 2, v.Total)
	// Os indicadores ignoram o filtro.
	assert.Equal(t, "R$ 15,00", v.Cartoes.ComissoesTotais)
	assert.Empty(t, v.Mensagem)
}

func TestEstado_RenderizarSemResultados(t *testing.T) {
	estado := painelservice.NovoEstado("inexistente")
	estado.Substituir(amostra)

	v := estado.Renderizar(time.Now())

	assert.True(t, v.Vazia())
	assert.Equal(t, painelservice.MensagemListaVazia, v.Mensagem)
	assert.Equal(t, "Nenhum contrato encontrado.", v.Mensagem)
}

func TestEstado_SubstituirTrocaAColecaoInteira(t *testing.T) {
	estado := painelservice.NovoEstado("")
	estado.Substituir(amostra)
	estado.Substituir(amostra[:1])

	assert.Len(t, estado.Registros(), 1)

	estado.DefinirFiltro("x")
	assert.Equal(t, "x", estado.Filtro())
}
