package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	"github.com/sessionlog/sessionlog-go/internal/config"
	"github.com/sessionlog/sessionlog-go/pkg/diag"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// BuildReporter creates the failure reporter selected by the configuration.
// The returned closer releases any file the reporter holds.
func BuildReporter(cfg config.Diagnostics, stderr io.Writer) (diag.Reporter, io.Closer, error) {
	if stderr == nil {
		stderr = os.Stderr
	}

	switch cfg.Kind {
	case config.DiagNone:
		return diag.NoopReporter{}, nopCloser{}, nil

	case config.DiagZerolog:
		if cfg.File == "" {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
			return diag.NewZerologReporter(logger), nopCloser{}, nil
		}
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		logger := zerolog.New(rotating).With().Timestamp().Logger()
		return diag.NewZerologReporter(logger), rotating, nil

	case config.DiagCBOR:
		file, err := diag.NewFileReporter(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		// The CBOR file is not human readable; failures also go to stderr.
		return diag.NewMultiReporter(stderrReporter(stderr), file), file, nil

	default:
		return stderrReporter(stderr), nopCloser{}, nil
	}
}

func stderrReporter(w io.Writer) diag.Reporter {
	return diag.NewSlogReporter(slog.New(slog.NewTextHandler(w, nil)))
}
