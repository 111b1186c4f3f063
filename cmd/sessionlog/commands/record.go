package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/sessionlog/sessionlog-go/internal/config"
	"github.com/sessionlog/sessionlog-go/pkg/filelog"
	"github.com/spf13/cobra"
)

// Line prefixes understood by the recorder.
const (
	prefixIncoming = '<'
	prefixOutgoing = '>'
	prefixEvent    = '!'
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ErrUnknownDirective is returned for input lines without a known prefix.
var ErrUnknownDirective = errors.New("line must start with '<', '>' or '!'")

func newRecordCmd(opts *Options) *cobra.Command {
	var (
		schedule    string
		watchConfig bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record messages and events read from stdin",
		Long: `Reads stdin line by line and appends each line to the session logs:

  < text   incoming message
  > text   outgoing message
  ! text   event

Lines with any other prefix are skipped with a warning.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			id, err := opts.sessionID(cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("clear-schedule") {
				cfg.ClearSchedule = schedule
			}

			logger := opts.logger(cmd.ErrOrStderr())

			reporter, closer, err := BuildReporter(cfg.Diagnostics, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			w, err := filelog.New(cfg.Log.Path, id,
				append(cfg.Log.Options(), filelog.WithReporter(reporter))...)
			if err != nil {
				return err
			}
			rec := NewRecorder(w, logger)
			defer rec.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.ClearSchedule != "" {
				c, err := ScheduleClear(cfg.ClearSchedule, rec, logger)
				if err != nil {
					return err
				}
				c.Start()
				// Runs before rec.Close; waits for a clear in progress.
				defer func() { <-c.Stop().Done() }()
			}

			if watchConfig && opts.ConfigPath != "" {
				go func() {
					err := config.Watch(ctx, opts.ConfigPath, logger, func(c *config.Config) {
						rec.SetDurabilityMode(c.Log.SyncAfterWrite)
					})
					if err != nil {
						logger.Warn("config watch stopped", "error", err)
					}
				}()
			}

			logger.Info("recording", "session", id.String(), "messages", w.MessagesPath(), "events", w.EventsPath())
			stats, err := rec.Run(ctx, cmd.InOrStdin())
			logger.Info("recording finished",
				"incoming", stats.Incoming,
				"outgoing", stats.Outgoing,
				"events", stats.Events,
				"skipped", stats.Skipped,
				"failed", stats.Failed,
				"clears", stats.Clears,
			)
			return err
		},
	}

	cmd.Flags().StringVar(&schedule, "clear-schedule", "", "cron spec at which the logs are cleared")
	cmd.Flags().BoolVar(&watchConfig, "watch-config", false, "apply sync_after_write changes from the config file")
	return cmd
}

// RecordStats counts what a Recorder has processed.
type RecordStats struct {
	Incoming int
	Outgoing int
	Events   int
	Skipped  int
	Failed   int
	Clears   int
}

// Recorder feeds input lines into a writer. It serializes all writer calls,
// so scheduled clears never run concurrently with writes.
type Recorder struct {
	mu     sync.Mutex
	w      *filelog.Writer
	logger *slog.Logger
	stats  RecordStats
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w *filelog.Writer, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{w: w, logger: logger}
}

// Handle records a single input line.
func (r *Recorder) Handle(line string) error {
	if line == "" {
		return nil
	}

	text := strings.TrimPrefix(line[1:], " ")

	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	switch line[0] {
	case prefixIncoming:
		if err = r.w.RecordIncoming(text); err == nil {
			r.stats.Incoming++
		}
	case prefixOutgoing:
		if err = r.w.RecordOutgoing(text); err == nil {
			r.stats.Outgoing++
		}
	case prefixEvent:
		if err = r.w.RecordEvent(text); err == nil {
			r.stats.Events++
		}
	default:
		r.stats.Skipped++
		return fmt.Errorf("%w: %q", ErrUnknownDirective, line)
	}

	if err != nil {
		r.stats.Failed++
	}
	return err
}

// Clear truncates the session logs.
func (r *Recorder) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.w.Clear(); err != nil {
		return err
	}
	r.stats.Clears++
	return nil
}

// Close closes the writer. It waits for an in-flight write or clear.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w.Close()
}

// SetDurabilityMode switches sync-after-write on the writer.
func (r *Recorder) SetDurabilityMode(enabled bool) {
	if r.w.DurabilityMode() != enabled {
		r.logger.Info("durability mode changed", "sync_after_write", enabled)
	}
	r.w.SetDurabilityMode(enabled)
}

// Stats returns a snapshot of the counters.
func (r *Recorder) Stats() RecordStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Run records lines from in until EOF or ctx is done. Write failures have
// already been reported by the writer and do not stop the run; only read
// errors are returned.
//
// When ctx is done and in is an io.Closer, Run closes it to unblock the
// pending read. Other readers keep the reading goroutine blocked until
// their Read returns.
func (r *Recorder) Run(ctx context.Context, in io.Reader) (RecordStats, error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			if c, ok := in.(io.Closer); ok {
				_ = c.Close()
			}
			return r.Stats(), nil
		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-readErr:
				default:
				}
				return r.Stats(), err
			}
			if err := r.Handle(line); errors.Is(err, ErrUnknownDirective) {
				r.logger.Warn("skipping line", "error", err)
			}
		}
	}
}

// ScheduleClear registers a job that clears the recorder's logs on the
// given standard cron spec. The returned scheduler is not started.
func ScheduleClear(spec string, r *Recorder, logger *slog.Logger) (*cron.Cron, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := r.Clear(); err != nil {
			logger.Warn("scheduled clear failed", "error", err)
			return
		}
		logger.Info("logs cleared on schedule")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid clear schedule %q: %w", spec, err)
	}
	return c, nil
}
