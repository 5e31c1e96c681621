// Package logger provides the application-wide Logger backed by log/slog.
//
// Calls follow one of two shapes:
//
//	log.Info("Starting server on port ", port)                  // concatenated message
//	log.Info("domain registered", "domain", name, "id", id)     // message plus key/value attributes
//
// The second shape is recognised when the first argument is a string followed by
// an even number of arguments whose keys are strings.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
