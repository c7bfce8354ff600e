// Package logging provides the leveled, nil-safe Logger used throughout this
// module. Functions that log, such as environment.CollectValid and
// envfile.Save, take their logger from the caller and never fall back to a
// global one. Callers that want ENVIRON_LOG_LEVEL to apply should pass
// RootLogger or a sublogger of it, e.g. logging.RootLogger.Sublogger("envfile").
// Passing nil disables logging.
package logging
