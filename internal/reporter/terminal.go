package reporter

import (
	"fmt"
	"strings"
)

// TerminalReporter outputs the analysis in a human-readable terminal format
type TerminalReporter struct{}

// Report generates terminal output for the given analysis result
func (r *TerminalReporter) Report(result Result) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[✓] %d mods analyzed\n", len(result.Mods)))

	if result.Satisfied() {
		sb.WriteString("All dependencies are satisfied!\n")
		if len(result.Ordered) > 0 {
			sb.WriteString("\nLoad order:\n")
			for i, m := range result.Ordered {
				sb.WriteString(fmt.Sprintf("  %2d. %s (%s)\n", i+1, m.String(), m.FileName))
			}
		}
		return []byte(sb.String()), nil
	}

	sb.WriteString(fmt.Sprintf("\nFound %d dependency faults\n", len(result.Faults)))
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	for _, f := range result.Faults {
		sb.WriteString(f.Error() + "\n")
	}

	return []byte(sb.String()), nil
}
