package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_RespeitaNivel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("info", &buf)

	log.Debug("não deve aparecer", nil)
	assert.Zero(t, buf.Len())

	log.Info("contrato criado", map[string]interface{}{"id": "abc"})
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "contrato criado", entry["msg"])
	assert.Equal(t, "abc", entry["fields"].(map[string]interface{})["id"])
}

func TestLogger_ErrorIncluiCausa(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("error", &buf)

	log.Warn("ignorado", nil)
	log.Error("falha ao excluir contrato", errors.New("timeout"))

	assert.Contains(t, buf.String(), `"error":"timeout"`)
	assert.NotContains(t, buf.String(), "ignorado")
}

func TestLogger_FatalEncerra(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("debug", &buf).(*SlogLogger)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal("sem banco", errors.New("refused"))

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "sem banco")
}
