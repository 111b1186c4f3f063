// Package interactive provides the interactive console of sessionlog.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sessionlog/sessionlog-go/pkg/filelog"
)

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

// Console drives a session log writer from typed commands.
type Console struct {
	w   *filelog.Writer
	rl  *readline.Instance
	out io.Writer
}

// New creates a console on the terminal for w.
func New(w *filelog.Writer) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sessionlog> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{w: w, rl: rl, out: rl.Stdout()}, nil
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			return
		}

		if quit := c.Execute(line); quit {
			return
		}
	}
}

// Execute runs one command line and reports whether the console should exit.
func (c *Console) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "help", "?":
		c.printHelp()

	case "in", "<":
		c.result(c.w.RecordIncoming(rest), "incoming recorded")

	case "out", ">":
		c.result(c.w.RecordOutgoing(rest), "outgoing recorded")

	case "event", "!":
		c.result(c.w.RecordEvent(rest), "event recorded")

	case "clear":
		c.result(c.w.Clear(), "logs cleared")

	case "sync":
		c.cmdSync(rest)

	case "paths":
		infoColor.Fprintf(c.out, "messages: %s\nevents:   %s\n", c.w.MessagesPath(), c.w.EventsPath())

	case "status":
		infoColor.Fprintf(c.out, "session: %s\nsync:    %s\n", c.w.ID(), onOff(c.w.DurabilityMode()))

	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Console) cmdSync(arg string) {
	switch strings.ToLower(arg) {
	case "on", "true", "1":
		c.w.SetDurabilityMode(true)
	case "off", "false", "0":
		c.w.SetDurabilityMode(false)
	case "":
	default:
		errColor.Fprintf(c.out, "Usage: sync [on|off]\n")
		return
	}
	infoColor.Fprintf(c.out, "sync: %s\n", onOff(c.w.DurabilityMode()))
}

func (c *Console) result(err error, ok string) {
	if err != nil {
		errColor.Fprintf(c.out, "error: %v\n", err)
		return
	}
	okColor.Fprintln(c.out, ok)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
Session Log Commands:
  in <text>      - Record an incoming message
  out <text>     - Record an outgoing message
  event <text>   - Record an event
  clear          - Truncate both logs
  sync [on|off]  - Show or set sync-after-write
  paths          - Show log file paths
  status         - Show session and sync mode
  help           - Show this help
  quit           - Exit`)
}
