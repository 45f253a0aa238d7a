// Package moeda formata valores no padrão brasileiro (pt-BR, Real).
package moeda

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var impressora = message.NewPrinter(language.BrazilianPortuguese)

// FormatarBRL devolve o valor como "R$ 1.234,56". NaN e infinitos viram zero.
func FormatarBRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	sinal := ""
	if v < 0 {
		sinal = "-"
		v = -v
	}
	return sinal + "R$ " + impressora.Sprint(number.Decimal(v, number.Scale(2)))
}

// FormatarInteiro aplica o separador de milhar ("1.250").
func FormatarInteiro(n int) string {
	return impressora.Sprint(number.Decimal(n))
}

// SimNao traduz um booleano para o texto exibido nas telas e exportações.
func SimNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
