// Package logger provides structured logging for deferred globals and the
// packages around them, using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("global")
//	log.Info("value installed", logger.Fields("global", "settings"))
package logger
