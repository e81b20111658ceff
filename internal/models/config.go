package models

// Config holds configuration for a modcheck run
type Config struct {
	// Directory containing the mod jars to validate
	Dir string

	// Output settings
	OutputFormat string // "terminal", "json", "sarif"
	OutputFile   string // Optional output file path

	// Behavior settings
	FailOnFault bool // Exit with code 1 if dependency faults found
	Verbose     bool // List every analyzed mod and enable debug logging
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Dir:          ".",
		OutputFormat: "terminal",
		FailOnFault:  true,
	}
}
