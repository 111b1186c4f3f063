// Command sessionlog writes per-session protocol message and event logs.
//
// Usage:
//
//	sessionlog <command> [flags]
//
// Commands:
//
//	paths    Print the log file paths of a session
//	record   Record messages and events read from stdin
//	console  Drive a session log interactively
//	clear    Truncate the logs of a session
//
// Examples:
//
//	# Where would the logs of a session go?
//	sessionlog paths --dir /var/log/fix --session 'FIX.4.2:BUY->SELL'
//
//	# Record a capture with millisecond timestamps on every line
//	sessionlog record -d /var/log/fix -s 'FIX.4.2:BUY->SELL' --millis --timestamps < capture.txt
//
//	# Use a config file and clear the logs every midnight
//	sessionlog record -c sessionlog.yaml --clear-schedule '0 0 * * *' --watch-config
package main

import (
	"os"

	"github.com/sessionlog/sessionlog-go/cmd/sessionlog/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
