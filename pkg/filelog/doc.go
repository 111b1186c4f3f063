// Package filelog writes per-session message and event logs to plain files.
//
// Each session gets two append-only files under a base directory, named
// after the session identity:
//
//	<begin>-<sender>-<target>[-<qualifier>].messages.log
//	<begin>-<sender>-<target>[-<qualifier>].event.log
//
// The messages log holds every inbound and outbound protocol message
// verbatim, one per line, optionally prefixed with a timestamp. The event
// log holds diagnostic notices, always timestamp-prefixed. Timestamps are
// UTC in the form 20060102-15:04:05 (optionally with .000 milliseconds)
// followed by ": ".
//
// # Basic Usage
//
//	w, err := filelog.New("/var/log/fix", id,
//	    filelog.WithMillis(true),
//	    filelog.WithReporter(diag.NewSlogReporter(slog.Default())),
//	)
//	if err != nil {
//	    return err // *InitError, matches ErrLogInitialization
//	}
//	defer w.Close()
//
//	w.RecordOutgoing("8=FIX.4.2\x019=...")
//	w.RecordEvent("Logon sent")
//
// # Failure Handling
//
// Construction failures are fatal and returned as *InitError. Once open,
// write and clear failures are handed to the configured diag.Reporter and
// also returned, so callers may ignore them; the writer stays usable.
//
// A Writer is driven by a single session and performs no internal locking.
// Callers must serialize calls, in particular Clear against writes.
package filelog
