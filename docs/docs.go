// Package docs registra a especificação Swagger da API de contratos.
// Gerado a partir das anotações dos handlers em internal/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/contratos": {
            "get": {
                "description": "Retorna a coleção completa, sem filtro.",
                "produces": ["application/json"],
                "tags": ["contratos"],
                "summary": "Lista todos os contratos",
                "responses": {
                    "200": {"description": "Lista de contratos", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Contrato"}}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Cria um contrato. O ID é atribuído pelo sistema.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contratos"],
                "summary": "Cria um novo contrato",
                "parameters": [
                    {"description": "Dados do contrato", "name": "contrato", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Contrato"}}
                ],
                "responses": {
                    "201": {"description": "Contrato criado com sucesso", "schema": {"$ref": "#/definitions/domain.Contrato"}},
                    "400": {"description": "Payload inválido ou cliente não informado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/contratos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contratos"],
                "summary": "Obtém um contrato por ID",
                "parameters": [
                    {"type": "string", "description": "ID do Contrato", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Contrato encontrado", "schema": {"$ref": "#/definitions/domain.Contrato"}},
                    "404": {"description": "Contrato não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Sobrescreve todos os campos do contrato. O ID não pode ser alterado.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contratos"],
                "summary": "Atualiza um contrato",
                "parameters": [
                    {"type": "string", "description": "ID do Contrato", "name": "id", "in": "path", "required": true},
                    {"description": "Dados do contrato", "name": "contrato", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Contrato"}}
                ],
                "responses": {
                    "200": {"description": "Contrato atualizado com sucesso", "schema": {"$ref": "#/definitions/domain.Contrato"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Contrato não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "ID divergente", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["contratos"],
                "summary": "Exclui um contrato",
                "parameters": [
                    {"type": "string", "description": "ID do Contrato", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Nenhum conteúdo"},
                    "404": {"description": "Contrato não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/painel": {
            "get": {
                "description": "Indicadores sobre a coleção completa e a tabela filtrada por cliente ou estado.",
                "produces": ["application/json"],
                "tags": ["painel"],
                "summary": "Painel de contratos",
                "parameters": [
                    {"type": "string", "description": "Texto de busca (cliente, sigla ou nome do estado)", "name": "filtro", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/painelservice.Visao"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/painel/stream": {
            "get": {
                "produces": ["text/event-stream"],
                "tags": ["painel"],
                "summary": "Painel ao vivo (Server-Sent Events)",
                "parameters": [
                    {"type": "string", "description": "Texto de busca", "name": "filtro", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Evento 'painel' a cada snapshot", "schema": {"$ref": "#/definitions/painelservice.Visao"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/exportacoes/contratos.xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["exportacoes"],
                "summary": "Exporta os contratos em planilha",
                "responses": {
                    "200": {"description": "contratos.xlsx", "schema": {"type": "file"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/exportacoes/contratos.pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["exportacoes"],
                "summary": "Exporta os contratos em PDF",
                "responses": {
                    "200": {"description": "contratos.pdf", "schema": {"type": "file"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Contrato": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "cliente": {"type": "string", "example": "Condomínio Edifício Aurora"},
                "estado": {"type": "string", "example": "SP"},
                "valorGlobal": {"type": "string", "example": "125000.50"},
                "valorComissao": {"type": "string", "example": "6250"},
                "objeto": {"type": "string"},
                "qtdElevadores": {"type": "string", "example": "4"},
                "qtdPlataformas": {"type": "string", "example": "1"},
                "inicio": {"type": "string", "example": "2025-01-15"},
                "encerramento": {"type": "string", "example": "2026-01-14"},
                "necessitaArt": {"type": "boolean"},
                "gestor": {"type": "string"},
                "telefone": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "domain.ErrorResponse": {
            "description": "Estrutura padronizada para respostas de erro na API.",
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "category": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string", "example": "Erro de Validação: Informe o nome do cliente."}
            }
        },
        "painelservice.Resumo": {
            "type": "object",
            "properties": {
                "totalVendasMes": {"type": "number"},
                "contratosAtivos": {"type": "integer"},
                "comissoesTotais": {"type": "number"},
                "totalElevadores": {"type": "integer"},
                "totalPlataformas": {"type": "integer"}
            }
        },
        "painelservice.Cartoes": {
            "type": "object",
            "properties": {
                "totalVendasMes": {"type": "string", "example": "R$ 1.234,56"},
                "contratosAtivos": {"type": "string"},
                "comissoesTotais": {"type": "string"},
                "totalElevadores": {"type": "string"},
                "totalPlataformas": {"type": "string"}
            }
        },
        "painelservice.Linha": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "cliente": {"type": "string"},
                "estado": {"type": "string", "example": "São Paulo"},
                "valorGlobal": {"type": "string"},
                "valorComissao": {"type": "string"},
                "inicio": {"type": "string"},
                "encerramento": {"type": "string"}
            }
        },
        "painelservice.Visao": {
            "type": "object",
            "properties": {
                "filtro": {"type": "string"},
                "resumo": {"$ref": "#/definitions/painelservice.Resumo"},
                "cartoes": {"$ref": "#/definitions/painelservice.Cartoes"},
                "linhas": {"type": "array", "items": {"$ref": "#/definitions/painelservice.Linha"}},
                "total": {"type": "integer"},
                "mensagem": {"type": "string", "example": "Nenhum contrato encontrado."}
            }
        }
    }
}`

// SwaggerInfo guarda as informações exportadas da especificação.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Gestão de Contratos API",
	Description:      "Contratos de manutenção de elevadores e plataformas: cadastro, painel e exportações.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
