package types

// RunMode is the deployment mode of the service
type RunMode string

// LogLevel is the logging level ex debug, info, warn, error
type LogLevel string

const (
	ModeLocal RunMode = "local"
	ModeProd  RunMode = "prod"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
