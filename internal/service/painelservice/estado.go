package painelservice

import (
	"sync"
	"time"

	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/pkg/moeda"
)

// MensagemListaVazia é a linha exibida quando nenhum contrato passa pelo filtro.
const MensagemListaVazia = "Nenhum contrato encontrado."

// Linha é um contrato já formatado para a tabela do painel.
type Linha struct {
	ID           string `json:"id"`
	Cliente      string `json:"cliente"`
	Estado       string `json:"estado"`
	ValorGlobal  string `json:"valorGlobal"`
	Comissao     string `json:"valorComissao"`
	Inicio       string `json:"inicio"`
	Encerramento string `json:"encerramento"`
}

// Cartoes traz os indicadores já formatados em pt-BR.
type Cartoes struct {
	TotalVendasMes   string `json:"totalVendasMes"`
	ContratosAtivos  string `json:"contratosAtivos"`
	ComissoesTotais  string `json:"comissoesTotais"`
	TotalElevadores  string `json:"totalElevadores"`
	TotalPlataformas string `json:"totalPlataformas"`
}

// Visao é o painel pronto para ser desenhado.
type Visao struct {
	Filtro   string  `json:"filtro"`
	Resumo   Resumo  `json:"resumo"`
	Cartoes  Cartoes `json:"cartoes"`
	Linhas   []Linha `json:"linhas"`
	Total    int     `json:"total"`
	Mensagem string  `json:"mensagem,omitempty"`
}

// Vazia indica se a tabela deve mostrar apenas a linha de aviso.
func (v Visao) Vazia() bool {
	return len(v.Linhas) == 0
}

// Estado guarda a última coleção recebida e o texto de filtro do painel.
// Cada snapshot substitui a coleção inteira; nunca há mescla.
type Estado struct {
	mu        sync.RWMutex
	registros []domain.Contrato
	filtro    string
}

// NovoEstado cria o estado com a coleção vazia.
func NovoEstado(filtro string) *Estado {
	return &Estado{filtro: filtro, registros: []domain.Contrato{}}
}

// Substituir troca a coleção pelo snapshot recebido.
func (e *Estado) Substituir(registros []domain.Contrato) {
	copia := make([]domain.Contrato, len(registros))
	copy(copia, registros)

	e.mu.Lock()
	e.registros = copia
	e.mu.Unlock()
}

// DefinirFiltro altera o texto de busca.
func (e *Estado) DefinirFiltro(texto string) {
	e.mu.Lock()
	e.filtro = texto
	e.mu.Unlock()
}

// Filtro devolve o texto de busca atual.
func (e *Estado) Filtro() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filtro
}

// Registros devolve a coleção completa, sem filtro.
func (e *Estado) Registros() []domain.Contrato {
	e.mu.RLock()
	defer e.mu.RUnlock()
	copia := make([]domain.Contrato, len(e.registros))
	copy(copia, e.registros)
	return copia
}

// Renderizar monta a visão: indicadores sobre a coleção completa e tabela filtrada.
func (e *Estado) Renderizar(agora time.Time) Visao {
	e.mu.RLock()
	registros, filtro := e.registros, e.filtro
	e.mu.RUnlock()

	resumo := CalcularResumo(registros, agora)
	filtrados := Filtrar(registros, filtro)

	v := Visao{
		Filtro: filtro,
		Resumo: resumo,
		Cartoes: Cartoes{
			TotalVendasMes:   moeda.FormatarBRL(resumo.TotalVendasMes),
			ContratosAtivos:  moeda.FormatarInteiro(resumo.ContratosAtivos),
			ComissoesTotais:  moeda.FormatarBRL(resumo.ComissoesTotais),
			TotalElevadores:  moeda.FormatarInteiro(resumo.TotalElevadores),
			TotalPlataformas: moeda.FormatarInteiro(resumo.TotalPlataformas),
		},
		Linhas: make([]Linha, 0, len(filtrados)),
		Total:  len(registros),
	}
	for _, c := range filtrados {
		v.Linhas = append(v.Linhas, NovaLinha(c))
	}
	if v.Vazia() {
		v.Mensagem = MensagemListaVazia
	}
	return v
}

// NovaLinha formata um contrato para a tabela.
func NovaLinha(c domain.Contrato) Linha {
	return Linha{
		ID:           c.ID,
		Cliente:      c.Cliente,
		Estado:       domain.ExibirEstado(c.Estado),
		ValorGlobal:  moeda.FormatarBRL(c.ValorGlobal.Float()),
		Comissao:     moeda.FormatarBRL(c.ValorComissao.Float()),
		Inicio:       c.Inicio,
		Encerramento: c.Encerramento,
	}
}
