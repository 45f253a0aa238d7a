// Package painelservice calcula a visão do painel: filtro da lista e indicadores.
package painelservice

import (
	"strings"
	"time"

	"gestaocontratos/internal/domain"
)

// Resumo agrega os indicadores exibidos nos cartões do painel.
type Resumo struct {
	TotalVendasMes   float64 `json:"totalVendasMes"`
	ContratosAtivos  int     `json:"contratosAtivos"`
	ComissoesTotais  float64 `json:"comissoesTotais"`
	TotalElevadores  int     `json:"totalElevadores"`
	TotalPlataformas int     `json:"totalPlataformas"`
}

// Filtrar devolve os contratos cujo cliente, sigla da UF ou nome da UF contém o texto,
// sem diferenciar maiúsculas. Texto vazio devolve todos. A ordem é preservada.
func Filtrar(registros []domain.Contrato, texto string) []domain.Contrato {
	busca := strings.ToLower(texto)
	filtrados := make([]domain.Contrato, 0, len(registros))
	for _, c := range registros {
		if corresponde(c, busca) {
			filtrados = append(filtrados, c)
		}
	}
	return filtrados
}

func corresponde(c domain.Contrato, busca string) bool {
	if strings.Contains(strings.ToLower(c.Cliente), busca) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Estado), busca) {
		return true
	}
	nome, ok := domain.NomeEstado(c.Estado)
	return ok && strings.Contains(strings.ToLower(nome), busca)
}

// CalcularResumo calcula os indicadores sobre a coleção completa (o filtro não se aplica).
//
// Vendas do mês somam valorGlobal dos contratos com início no mês corrente de agora.
// Um contrato está ativo quando início <= hoje <= encerramento, comparando dias civis
// e exigindo as duas datas válidas. Valores não numéricos contam como zero.
func CalcularResumo(registros []domain.Contrato, agora time.Time) Resumo {
	var r Resumo
	hoje := domain.DiaCivil(agora)
	ano, mes, _ := agora.Date()

	for _, c := range registros {
		inicio, temInicio := domain.ParseData(c.Inicio)
		if temInicio && inicio.Year() == ano && inicio.Month() == mes {
			r.TotalVendasMes += c.ValorGlobal.Float()
		}

		encerramento, temEncerramento := domain.ParseData(c.Encerramento)
		if temInicio && temEncerramento && !hoje.Before(inicio) && !hoje.After(encerramento) {
			r.ContratosAtivos++
		}

		r.ComissoesTotais += c.ValorComissao.Float()
		r.TotalElevadores += c.QtdElevadores.Int()
		r.TotalPlataformas += c.QtdPlataformas.Int()
	}
	return r
}
