package reporter

import (
	"github.com/modpacker/modcheck/internal/models"
	"github.com/modpacker/modcheck/internal/resolver"
)

// Result is the outcome of one analysis run handed to reporters
type Result struct {
	Mods    []models.Mod    // Every mod analyzed
	Ordered []models.Mod    // Dependency-respecting load order; nil when faults exist
	Faults  resolver.Report // Every discovered fault; nil on success
}

// Satisfied returns true if the analysis found no faults
func (r Result) Satisfied() bool {
	return len(r.Faults) == 0
}

// Reporter is the interface for output formatters
type Reporter interface {
	// Report generates output for the given analysis result
	Report(result Result) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "sarif":
		return &SARIFReporter{}
	default:
		return &TerminalReporter{}
	}
}
