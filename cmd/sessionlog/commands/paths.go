package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sessionlog/sessionlog-go/pkg/filelog"
	"github.com/sessionlog/sessionlog-go/pkg/session"
	"github.com/spf13/cobra"
)

func newPathsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the log file paths of a session",
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
			return RunPaths(cfg.Log.Path, id, cmd.OutOrStdout())
		},
	}
}

// RunPaths writes the messages and event log paths of a session. No files
// are created.
func RunPaths(dir string, id session.ID, out io.Writer) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	messages, events := filelog.Paths(abs, id)
	_, err = fmt.Fprintf(out, "messages: %s\nevents:   %s\n", messages, events)
	return err
}
