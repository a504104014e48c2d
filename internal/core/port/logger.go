package port

// Fields carries structured data into a log entry.
type Fields map[string]interface{}

// LoggerPort is the logging contract used by the core. It keeps the use cases
// independent of the concrete logger implementation.
type LoggerPort interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)

	// WithFields returns a new logger with the given fields pre-attached,
	// used to add context such as a component name or trace id.
	WithFields(fields Fields) LoggerPort
}
