package web

import (
	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/pkg/moeda"
)

// Campo é um par rótulo/valor da tela de detalhes.
type Campo struct {
	Rotulo string
	Valor  string
}

// Detalhes projeta todos os campos do contrato. Gestor, telefone e e-mail só aparecem
// quando preenchidos.
func Detalhes(c domain.Contrato) []Campo {
	campos := []Campo{
		{"Cliente", c.Cliente},
		{"Estado", c.Estado},
		{"Valor Global", moeda.FormatarBRL(c.ValorGlobal.Float())},
		{"Comissão", moeda.FormatarBRL(c.ValorComissao.Float())},
		{"Objeto", c.Objeto},
		{"Elevadores", string(c.QtdElevadores)},
		{"Plataformas", string(c.QtdPlataformas)},
		{"Início", c.Inicio},
		{"Encerramento", c.Encerramento},
		{"Necessita ART", moeda.SimNao(bool(c.NecessitaArt))},
	}
	opcionais := []Campo{
		{"Gestor", c.Gestor},
		{"Telefone", c.Telefone},
		{"E-mail", c.Email},
	}
	for _, o := range opcionais {
		if o.Valor != "" {
			campos = append(campos, o)
		}
	}
	return campos
}
