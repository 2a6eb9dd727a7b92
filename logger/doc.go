// Package logger provides structured logging for seqkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("seq")
//	log.Debug("pull", logger.Fields(logger.FieldStage, "filter"))
package logger
