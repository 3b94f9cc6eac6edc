package config

const (
	// DefaultEnvFile is the dotenv file read on startup
	DefaultEnvFile = ".env"
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the default log format
	DefaultLogFormat = "text"
)

// Environment variables read by Load.
const (
	EnvNoColor   = "GOSPEC_NO_COLOR"
	EnvProgress  = "GOSPEC_PROGRESS"
	EnvLogLevel  = "GOSPEC_LOG_LEVEL"
	EnvLogFormat = "GOSPEC_LOG_FORMAT"
	EnvFilter    = "GOSPEC_FILTER"

	// EnvStdNoColor is the cross-tool NO_COLOR convention.
	EnvStdNoColor = "NO_COLOR"
)

// ValidLogLevels are the accepted values for the log level
var ValidLogLevels = []string{
	"debug",
	"info",
	"warn",
	"error",
}
