// Package logging provides structured logging for the huewire CLI.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the tool. CLI output itself goes to stdout via
// fmt; zap output goes to stderr and is silent unless enabled.
//
// # Configuration
//
// Logging is controlled by the HUEWIRE_LOG_LEVEL environment variable
// ("debug", "info", "warn", "error"). When unset, the logger is a no-op so
// command output stays clean for scripting:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("encoded message",
//	    zap.String("message", msg.String()),
//	    zap.Int("length", len(payload)),
//	)
//
// # Payload Logging
//
// LogPayload emits a hex dump of a raw payload at debug level:
//
//	logging.LogPayload("decoding payload", payload)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
