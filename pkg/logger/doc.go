// Package logger provides a structured logging interface for the collector.
//
// It wraps the zerolog library behind a small Logger interface with
// leveled methods, field chaining (WithField, WithFields, WithError) and
// map-based structured variants. Output goes to a pretty console writer,
// optionally duplicated to a log file when configured.
//
// Basic Usage:
//
//	cfg := &config.LoggingConfig{Level: "info", File: "logs/collector.log"}
//	if err := logger.Initialize(cfg); err != nil {
//	    ...
//	}
//
//	log := logger.GetLogger()
//	log.WithField("tag", "nlp").Info("starting collection")
//	log.WithError(err).Error("answer fetch failed")
//
// Tests that need a Logger but no output can use NewNopLogger.
package logger
