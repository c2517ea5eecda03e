package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"Caixa/config"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init configura o logger global a partir de LOG_LEVEL e LOG_FORMAT.
func Init(cfg *config.Config) {
	var out io.Writer = os.Stdout
	if strings.EqualFold(cfg.Log.Format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	SetOutput(out, cfg.Log.Level)

	Get().Info().
		Str("app", cfg.App.Name).
		Str("environment", cfg.App.Environment).
		Str("level", cfg.Log.Level).
		Msg("Logger inicializado")
}

// SetOutput troca o destino do logger global, usado também pelos testes.
func SetOutput(w io.Writer, level string) {
	l := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()

	mu.Lock()
	log = l
	mu.Unlock()
}

func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func Debug() *zerolog.Event { return Get().Debug() }

func Info() *zerolog.Event { return Get().Info() }

func Warn() *zerolog.Event { return Get().Warn() }

func Error() *zerolog.Event { return Get().Error() }

func Fatal() *zerolog.Event { return Get().Fatal() }
