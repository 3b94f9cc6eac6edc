package cli

import "gospec/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter    string
	Progress  bool
	NoColor   bool
	LogLevel  string
	LogFormat string
	Examples  bool
	Summary   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:    f.Filter,
		Progress:  f.Progress,
		NoColor:   f.NoColor,
		LogLevel:  f.LogLevel,
		LogFormat: f.LogFormat,
		Examples:  f.Examples,
		Summary:   f.Summary,
	}
}
