package domain

// Estado associa a sigla de uma unidade federativa ao seu nome completo.
type Estado struct {
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// EstadoPadrao é a UF usada quando o contrato não informa nenhuma.
const EstadoPadrao = "SP"

// Estados lista as 27 unidades federativas na ordem exibida no formulário.
var Estados = []Estado{
	{"AC", "Acre"}, {"AL", "Alagoas"}, {"AP", "Amapá"}, {"AM", "Amazonas"},
	{"BA", "Bahia"}, {"CE", "Ceará"}, {"DF", "Distrito Federal"}, {"ES", "Espírito Santo"},
	{"GO", "Goiás"}, {"MA", "Maranhão"}, {"MT", "Mato Grosso"}, {"MS", "Mato Grosso do Sul"},
	{"MG", "Minas Gerais"}, {"PA", "Pará"}, {"PB", "Paraíba"}, {"PR", "Paraná"},
	{"PE", "Pernambuco"}, {"PI", "Piauí"}, {"RJ", "Rio de Janeiro"}, {"RN", "Rio Grande do Norte"},
	{"RS", "Rio Grande do Sul"}, {"RO", "Rondônia"}, {"RR", "Roraima"}, {"SC", "Santa Catarina"},
	{"SP", "São Paulo"}, {"SE", "Sergipe"}, {"TO", "Tocantins"},
}

var nomesEstados = func() map[string]string {
	m := make(map[string]string, len(Estados))
	for _, e := range Estados {
		m[e.Sigla] = e.Nome
	}
	return m
}()

// NomeEstado devolve o nome completo da UF e se a sigla é conhecida.
func NomeEstado(sigla string) (string, bool) {
	nome, ok := nomesEstados[sigla]
	return nome, ok
}

// ExibirEstado devolve o nome completo da UF ou, se a sigla for desconhecida, a própria sigla.
func ExibirEstado(sigla string) string {
	if nome, ok := nomesEstados[sigla]; ok {
		return nome
	}
	return sigla
}
