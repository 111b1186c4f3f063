// Package commands implements the sessionlog subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sessionlog/sessionlog-go/internal/config"
	"github.com/sessionlog/sessionlog-go/pkg/session"
	"github.com/spf13/cobra"
)

// Options holds the flags shared by all subcommands.
type Options struct {
	ConfigPath string
	Dir        string
	Session    string
	Millis     bool
	Timestamps bool
	Sync       bool
	Lock       bool
	Verbose    bool
}

// NewRootCmd builds the sessionlog command tree.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:   "sessionlog",
		Short: "Write per-session protocol message and event logs",
		Long: `sessionlog records the messages and events of protocol sessions into
plain text logs, one pair of files per session:

  <begin>-<sender>-<target>[-<qualifier>].messages.log
  <begin>-<sender>-<target>[-<qualifier>].event.log`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "configuration file (YAML)")
	pf.StringVarP(&opts.Dir, "dir", "d", "", "base directory of the logs (overrides log.path)")
	pf.StringVarP(&opts.Session, "session", "s", "", "session ID, BEGIN:SENDER->TARGET[:QUALIFIER]")
	pf.BoolVar(&opts.Millis, "millis", false, "include milliseconds in timestamps")
	pf.BoolVar(&opts.Timestamps, "timestamps", false, "prefix message lines with a timestamp")
	pf.BoolVar(&opts.Sync, "sync", false, "sync every write to stable storage")
	pf.BoolVar(&opts.Lock, "lock", false, "take an exclusive lock on the session logs")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newPathsCmd(opts),
		newClearCmd(opts),
		newRecordCmd(opts),
		newConsoleCmd(opts),
	)
	return root
}

// resolve loads the config file, if any, and applies flag overrides.
func (o *Options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Log.Path = o.Dir
	}
	if flags.Changed("millis") {
		cfg.Log.IncludeMillis = o.Millis
	}
	if flags.Changed("timestamps") {
		cfg.Log.IncludeTimestampForMessages = o.Timestamps
	}
	if flags.Changed("sync") {
		cfg.Log.SyncAfterWrite = o.Sync
	}
	if flags.Changed("lock") {
		cfg.Log.ExclusiveLock = o.Lock
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sessionID returns the --session flag, or the only configured session.
func (o *Options) sessionID(cfg *config.Config) (session.ID, error) {
	if o.Session != "" {
		return config.ParseSession(o.Session)
	}

	ids, err := cfg.SessionIDs()
	if err != nil {
		return session.ID{}, err
	}
	switch len(ids) {
	case 0:
		return session.ID{}, fmt.Errorf("no session given: use --session or configure sessions")
	case 1:
		return ids[0], nil
	default:
		return session.ID{}, fmt.Errorf("%d sessions configured: select one with --session", len(ids))
	}
}

// sessionIDs returns the --session flag, or every configured session.
func (o *Options) sessionIDs(cfg *config.Config) ([]session.ID, error) {
	if o.Session != "" {
		id, err := config.ParseSession(o.Session)
		if err != nil {
			return nil, err
		}
		return []session.ID{id}, nil
	}

	ids, err := cfg.SessionIDs()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no session given: use --session or configure sessions")
	}
	return ids, nil
}

func (o *Options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
