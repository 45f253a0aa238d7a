package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"gestaocontratos/internal/domain"
)

const (
	margem       = 14.0
	alturaLinha  = 7.0
	tamanhoFonte = 9.0
)

// Larguras em mm das colunas do PDF (A4 retrato menos as margens).
var largurasDocumento = []float64{50, 30, 26, 22, 20, 22, 12}

var (
	corCabecalho = [3]int{30, 41, 59}
	corListra    = [3]int{241, 245, 249}
)

// Documento gera o PDF com o título e uma tabela listrada dos contratos.
func Documento(contratos []domain.Contrato) ([]byte, error) {
	pdf := montarDocumento(contratos, true)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func montarDocumento(contratos []domain.Contrato, comprimir bool) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(comprimir)
	pdf.SetMargins(margem, margem, margem)
	pdf.SetAutoPageBreak(true, margem)
	pdf.SetTitle(TituloPDF, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(corCabecalho[0], corCabecalho[1], corCabecalho[2])
	pdf.Text(margem, 20, tr(TituloPDF))
	pdf.SetY(30)

	cabecalho := func() {
		pdf.SetFont("Helvetica", "B", tamanhoFonte)
		pdf.SetFillColor(corCabecalho[0], corCabecalho[1], corCabecalho[2])
		pdf.SetTextColor(255, 255, 255)
		for i, titulo := range CabecalhoDocumento {
			pdf.CellFormat(largurasDocumento[i], alturaLinha, tr(titulo), "", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", tamanhoFonte)
		pdf.SetTextColor(0, 0, 0)
	}
	cabecalho()

	_, alturaPagina := pdf.GetPageSize()
	for i, linha := range LinhasDocumento(contratos) {
		if pdf.GetY()+alturaLinha > alturaPagina-margem {
			pdf.AddPage()
			cabecalho()
		}
		listrada := i%2 == 1
		if listrada {
			pdf.SetFillColor(corListra[0], corListra[1], corListra[2])
		}
		for j, texto := range linha {
			pdf.CellFormat(largurasDocumento[j], alturaLinha, caber(pdf, tr(texto), largurasDocumento[j]), "", 0, "L", listrada, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf
}

// caber corta o texto para não invadir a coluna vizinha.
func caber(pdf *fpdf.Fpdf, texto string, largura float64) string {
	limite := largura - 2*pdf.GetCellMargin()
	if pdf.GetStringWidth(texto) <= limite {
		return texto
	}
	for len(texto) > 0 && pdf.GetStringWidth(texto+"...") > limite {
		texto = texto[:len(texto)-1]
	}
	return texto + "..."
}
