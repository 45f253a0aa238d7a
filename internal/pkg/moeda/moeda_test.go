package moeda_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"gestaocontratos/internal/pkg/moeda"
)

func TestFormatarBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", moeda.FormatarBRL(1234.56))
	assert.Equal(t, "R$ 0,00", moeda.FormatarBRL(0))
	assert.Equal(t, "R$ 1.000.000,00", moeda.FormatarBRL(1e6))
	assert.Equal(t, "R$ 7,50", moeda.FormatarBRL(7.5))
	assert.Equal(t, "-R$ 10,00", moeda.FormatarBRL(-10))
}

func TestFormatarBRL_ValorInvalidoViraZero(t *testing.T) {
	assert.Equal(t, "R$ 0,00", moeda.FormatarBRL(math.NaN()))
	assert.Equal(t, "R$ 0,00", moeda.FormatarBRL(math.Inf(1)))
}

func TestFormatarInteiro(t *testing.T) {
	assert.Equal(t, "1.250", moeda.FormatarInteiro(1250))
	assert.Equal(t, "3", moeda.FormatarInteiro(3))
}

func TestSimNao(t *testing.T) {
	assert.Equal(t, "Sim", moeda.SimNao(true))
	assert.Equal(t, "Não", moeda.SimNao(false))
}
