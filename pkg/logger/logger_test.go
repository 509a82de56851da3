package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/pkg/logger"
)

func TestNew_FijaCampoService(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "almacen-api"})

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.Contains(t, buf.String(), `"service":"almacen-api"`)
	assert.Contains(t, buf.String(), `"message":"hola"`)
}

func TestNew_RespetaNivel(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Info().Msg("no debería salir")

	assert.Empty(t, buf.String())
}
