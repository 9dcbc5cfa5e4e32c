package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jmrios/agropos-api/pkg/logger"
)

// El nivel se toma de la configuración; uno desconocido o vacío cae a info.
func TestSetup_NivelDeConfiguracion(t *testing.T) {
	zl := logger.Setup(logger.Config{Env: "production", Level: "debug", Service: "agropos-api"})
	assert.Equal(t, zerolog.DebugLevel, zl.GetLevel())

	zl = logger.Setup(logger.Config{Env: "production", Level: "WARN", Service: "agropos-api"})
	assert.Equal(t, zerolog.WarnLevel, zl.GetLevel(), "el nivel no distingue mayúsculas")

	zl = logger.Setup(logger.Config{Env: "production", Level: "verboso", Service: "agropos-api"})
	assert.Equal(t, zerolog.InfoLevel, zl.GetLevel())

	zl = logger.Setup(logger.Config{Env: "development", Service: "agropos-api"})
	assert.Equal(t, zerolog.InfoLevel, zl.GetLevel())
}
