package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	GameIDKey string = "gameID"
	SeatKey   string = "seat"
	CmdKey    string = "cmd"
)

// GetZeroLogger returns a console logger tagged with name
func GetZeroLogger(name string, out io.Writer, color bool) *zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	output := zerolog.ConsoleWriter{Out: out, NoColor: !color, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Str("logger", name).Logger()
	return &logger
}

// Named tags the current global logger with name. Call it when a
// component is built so it picks up Setup.
func Named(name string) zerolog.Logger {
	return log.With().Str("logger_name", name).Logger()
}

// Setup points the global logger at the console
func Setup(out io.Writer, level zerolog.Level, color bool) {
	zerolog.SetGlobalLevel(level)
	log.Logger = *GetZeroLogger("matatu", out, color)
}
