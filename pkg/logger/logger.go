// Package logger configura zerolog para toda la aplicación. Los paquetes
// internos escriben por el logger global de zerolog; aquí se decide formato,
// nivel y campos fijos a partir de pkg/config.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger, derivadas de config.AppConfig.
type Config struct {
	Env     string // development usa consola legible; el resto, JSON
	Level   string // debug, info, warn, error (LOG_LEVEL)
	Service string // nombre de la app, va como campo fijo en cada línea
}

// Setup construye el logger raíz y lo instala como logger global de zerolog,
// de modo que todo el proceso escriba por la misma salida con los mismos
// campos. Un nivel desconocido cae a info.
func Setup(cfg Config) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()
	log.Logger = zl
	return zl
}
