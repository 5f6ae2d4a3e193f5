// Package logger builds the zap logger shared by every command.
//
// Entries are written to stderr (and optionally a file) so that stdout only
// carries command output. Level and Format come from the log section of the
// configuration; Format is either console or json.
//
// WithRayID attaches the request id set by the rayid middleware.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Hashing platform", zap.String("platform", name))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
