package domain

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Contrato representa um contrato de manutenção de elevadores e plataformas (a Entidade).
// O documento é plano e não possui relações. O ID é atribuído na criação e nunca muda.
type Contrato struct {
	ID             string  `json:"id,omitempty"`
	Cliente        string  `json:"cliente" example:"Condomínio Edifício Aurora"`
	Estado         string  `json:"estado" example:"SP"`
	ValorGlobal    Decimal `json:"valorGlobal" swaggertype:"string" example:"125000.50"`
	ValorComissao  Decimal `json:"valorComissao" swaggertype:"string" example:"6250"`
	Objeto         string  `json:"objeto"`
	QtdElevadores  Inteiro `json:"qtdElevadores" swaggertype:"string" example:"4"`
	QtdPlataformas Inteiro `json:"qtdPlataformas" swaggertype:"string" example:"1"`
	Inicio         string  `json:"inicio" example:"2025-01-15"`
	Encerramento   string  `json:"encerramento" example:"2026-01-14"`
	NecessitaArt   Flag    `json:"necessitaArt" swaggertype:"boolean"`
	Gestor         string  `json:"gestor,omitempty"`
	Telefone       string  `json:"telefone,omitempty"`
	Email          string  `json:"email,omitempty"`
}

// NovoContrato devolve um contrato vazio com os valores padrão do formulário.
func NovoContrato() Contrato {
	return Contrato{Estado: EstadoPadrao}
}

// Persistido indica se o contrato já recebeu um identificador do repositório.
func (c Contrato) Persistido() bool {
	return c.ID != ""
}

// ClienteInformado indica se o campo obrigatório cliente está preenchido.
func (c Contrato) ClienteInformado() bool {
	return strings.TrimSpace(c.Cliente) != ""
}

// --- Coerção numérica e booleana ---
//
// Os documentos podem guardar números como texto (o formulário envia strings).
// Os tipos abaixo preservam o valor bruto e fazem a conversão explícita,
// devolvendo zero/false quando o valor não é interpretável.

var (
	prefixoDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	prefixoInteiro = regexp.MustCompile(`^[+-]?\d+`)
)

// Decimal guarda um valor monetário no formato em que foi armazenado.
type Decimal string

// Float converte o valor usando o maior prefixo numérico válido; inválido vira 0.
func (d Decimal) Float() float64 {
	m := prefixoDecimal.FindString(strings.TrimSpace(string(d)))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// UnmarshalJSON aceita número, string ou null.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	*d = Decimal(valorBruto(data))
	return nil
}

// Inteiro guarda uma quantidade no formato em que foi armazenada.
type Inteiro string

// Int converte o valor usando o maior prefixo inteiro válido; inválido vira 0.
func (i Inteiro) Int() int {
	m := prefixoInteiro.FindString(strings.TrimSpace(string(i)))
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

// UnmarshalJSON aceita número, string ou null.
func (i *Inteiro) UnmarshalJSON(data []byte) error {
	*i = Inteiro(valorBruto(data))
	return nil
}

// valorBruto extrai o texto de um número ou string JSON. Qualquer outra coisa vira "".
func valorBruto(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return ""
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ""
	}
	return n.String()
}

// Flag é um booleano tolerante: aceita true/false e textos como "on", "sim" e "1".
type Flag bool

// UnmarshalJSON nunca falha; valores desconhecidos viram false.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}
	*f = ParseFlag(valorBruto(data))
	return nil
}

// ParseFlag interpreta o valor de um checkbox ou texto livre.
func ParseFlag(s string) Flag {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "sim", "s", "1", "yes":
		return true
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v != 0
	}
	return false
}

// --- Datas ---

var layoutsData = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseData interpreta uma data ISO e devolve o dia civil correspondente (meia-noite UTC).
// Horário e fuso são descartados: "2025-03-01" é sempre 1º de março.
func ParseData(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layoutsData {
		if t, err := time.Parse(layout, s); err == nil {
			return DiaCivil(t), true
		}
	}
	return time.Time{}, false
}

// DiaCivil reduz um instante ao seu dia no calendário, representado à meia-noite UTC.
func DiaCivil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
