// Package diag provides the side channel used to report non-fatal I/O
// failures of session logs.
//
// Session logging is best-effort infrastructure: a failed write must not
// halt protocol processing. Writers hand such failures to a Reporter,
// which is fire-and-forget and never returns an error itself.
//
// # Basic Usage
//
//	// For development: report through slog
//	r := diag.NewSlogReporter(slog.Default())
//
//	// For production: append CBOR records to a file
//	r, _ := diag.NewFileReporter("/var/log/sessionlog/diag.cbor")
//
//	// Both: use MultiReporter
//	r = diag.NewMultiReporter(diag.NewSlogReporter(slog.Default()), fileReporter)
//
// # Record Format
//
// FileReporter writes one CBOR-encoded Record per report, using integer
// keys and canonical encoding. Each record carries a UUID so the same
// failure can be correlated across reporters.
package diag
