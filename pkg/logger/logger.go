// Package logger expõe o logger estruturado (zerolog) do processo.
//
// Inicialize uma vez com Init e use Get em qualquer lugar.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configura o logger na inicialização
type Options struct {
	// Level é o nível mínimo: trace, debug, info, warn, error.
	// Vazio ou desconhecido vira "info".
	Level string
	// Pretty liga a saída legível no console
	Pretty bool
	// Output padrão: os.Stdout
	Output io.Writer
}

var (
	instance zerolog.Logger
	once     sync.Once
)

// Init inicializa o logger. Só a primeira chamada tem efeito.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl := ParseLevel(opts.Level)

		instance = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Logger()
	})
	return instance
}

// Get devolve o logger; sem Init prévio, usa os valores padrão
func Get() *zerolog.Logger {
	l := Init(Options{})
	return &l
}

// Reset descarta o logger atual (apenas para testes)
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
}

// ParseLevel converte o nome do nível; padrão info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
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
