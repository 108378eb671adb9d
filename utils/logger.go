package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global zerolog logger. format "json" writes plain
// JSON lines; anything else uses the console writer.
func InitLogger(level, format string) {
	InitLoggerWithWriter(os.Stdout, level, format)
}

func InitLoggerWithWriter(out io.Writer, level, format string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if strings.EqualFold(format, "json") {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	log.Info().Str("level", lvl.String()).Msg("Logger initialized")
}

// LogError is a helper to log an error with zerolog.
func LogError(err error, message string) {
	if err != nil {
		log.Error().Err(err).Msg(message)
	}
}
