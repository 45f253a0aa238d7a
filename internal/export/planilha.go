package export

import (
	"github.com/xuri/excelize/v2"

	"gestaocontratos/internal/domain"
)

var largurasPlanilha = []float64{32, 20, 20, 16, 40, 12, 12, 14, 14, 14}

// Planilha gera o arquivo xlsx com uma aba "Contratos": cabeçalho e uma linha por contrato.
func Planilha(contratos []domain.Contrato) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	padrao := f.GetSheetName(0)
	if err := f.SetSheetName(padrao, AbaPlanilha); err != nil {
		return nil, err
	}

	cabecalho := make([]interface{}, len(CabecalhoPlanilha))
	for i, titulo := range CabecalhoPlanilha {
		cabecalho[i] = titulo
	}
	if err := f.SetSheetRow(AbaPlanilha, "A1", &cabecalho); err != nil {
		return nil, err
	}

	negrito, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	ultima, err := excelize.CoordinatesToCellName(len(CabecalhoPlanilha), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(AbaPlanilha, "A1", ultima, negrito); err != nil {
		return nil, err
	}

	for i, c := range contratos {
		celula, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		linha := LinhaPlanilha(c)
		if err := f.SetSheetRow(AbaPlanilha, celula, &linha); err != nil {
			return nil, err
		}
	}

	for i, largura := range largurasPlanilha {
		coluna, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(AbaPlanilha, coluna, coluna, largura); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
