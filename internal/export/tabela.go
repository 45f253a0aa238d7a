// Package export gera os arquivos de exportação da coleção de contratos (planilha e PDF).
package export

import (
	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/pkg/moeda"
)

const (
	NomePlanilha  = "contratos.xlsx"
	NomeDocumento = "contratos.pdf"
	AbaPlanilha   = "Contratos"
	TituloPDF     = "Gestão dos Contratos"
)

// CabecalhoPlanilha é a ordem fixa das colunas da planilha.
var CabecalhoPlanilha = []string{
	"Cliente", "Estado", "Valor Global (R$)", "Comissão (R$)", "Objeto do Contrato",
	"Elevadores", "Plataformas", "Início", "Encerramento", "Necessita ART",
}

// CabecalhoDocumento é a ordem fixa das colunas da tabela do PDF.
var CabecalhoDocumento = []string{
	"Cliente", "Estado", "Valor Global", "Comissão", "Início", "Encerramento", "ART",
}

// LinhaPlanilha converte um contrato nas células da planilha, na ordem do cabeçalho.
func LinhaPlanilha(c domain.Contrato) []interface{} {
	return []interface{}{
		c.Cliente,
		domain.ExibirEstado(c.Estado),
		moeda.FormatarBRL(c.ValorGlobal.Float()),
		moeda.FormatarBRL(c.ValorComissao.Float()),
		c.Objeto,
		c.QtdElevadores.Int(),
		c.QtdPlataformas.Int(),
		c.Inicio,
		c.Encerramento,
		moeda.SimNao(bool(c.NecessitaArt)),
	}
}

// LinhasDocumento monta o corpo da tabela do PDF, uma linha por contrato.
func LinhasDocumento(contratos []domain.Contrato) [][]string {
	linhas := make([][]string, 0, len(contratos))
	for _, c := range contratos {
		linhas = append(linhas, []string{
			c.Cliente,
			domain.ExibirEstado(c.Estado),
			moeda.FormatarBRL(c.ValorGlobal.Float()),
			moeda.FormatarBRL(c.ValorComissao.Float()),
			c.Inicio,
			c.Encerramento,
			moeda.SimNao(bool(c.NecessitaArt)),
		})
	}
	return linhas
}
