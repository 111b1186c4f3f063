package commands

import (
	"errors"

	"github.com/sessionlog/sessionlog-go/pkg/diag"
	"github.com/sessionlog/sessionlog-go/pkg/filelog"
	"github.com/sessionlog/sessionlog-go/pkg/session"
	"github.com/spf13/cobra"
)

func newClearCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Truncate the message and event logs of sessions",
		Long: `Truncates the message and event logs of the session given with --session.
Without --session, every session listed in the configuration is cleared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			ids, err := opts.sessionIDs(cfg)
			if err != nil {
				return err
			}

			reporter, closer, err := BuildReporter(cfg.Diagnostics, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			if err := RunClear(cfg.Log, ids, reporter); err != nil {
				return err
			}
			logger := opts.logger(cmd.ErrOrStderr())
			for _, id := range ids {
				logger.Info("logs cleared", "session", id.String())
			}
			return nil
		},
	}
}

// RunClear opens the logs of each session through one factory and
// truncates them. Every session is attempted; failures are joined.
func RunClear(settings filelog.Settings, ids []session.ID, reporter diag.Reporter, extra ...filelog.Option) error {
	f := filelog.NewFactory(settings, append([]filelog.Option{filelog.WithReporter(reporter)}, extra...)...)

	var errs []error
	for _, id := range ids {
		w, err := f.Create(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, w.Clear())
	}
	errs = append(errs, f.CloseAll())
	return errors.Join(errs...)
}
