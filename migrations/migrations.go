// Package migrations embute os scripts SQL aplicados pelo goose.
package migrations

import "embed"

// FS contém os arquivos de migração versionados (NNNNN_descricao.sql).
//
//go:embed *.sql
var FS embed.FS
