package commands

import (
	"github.com/sessionlog/sessionlog-go/cmd/sessionlog/interactive"
	"github.com/sessionlog/sessionlog-go/pkg/filelog"
	"github.com/spf13/cobra"
)

func newConsoleCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Drive a session log interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			id, err := opts.sessionID(cfg)
			if err != nil {
				return err
			}

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
			defer w.Close()

			console, err := interactive.New(w)
			if err != nil {
				return err
			}
			console.Run(cmd.Context())
			return nil
		},
	}
}
