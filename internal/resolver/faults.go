package resolver

import (
	"fmt"
	"strings"

	"github.com/modpacker/modcheck/internal/models"
)

// Fault is one problem discovered during dependency analysis. Every fault
// is recoverable and reported; analysis never stops at the first one.
type Fault interface {
	error

	// Kind returns a stable machine-readable identifier for the fault type.
	Kind() string
}

// Report is the ordered list of every fault found in one analysis.
type Report []Fault

// Error joins all faults with line breaks, one fault per line.
func (r Report) Error() string {
	msgs := make([]string, len(r))
	for i, f := range r {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "\n")
}

// UnsupportedPlatform reports a whole partition whose platform cannot be
// analyzed. No per-mod detail is attempted.
type UnsupportedPlatform struct {
	Platform models.Platform
	Files    []string // Every jar in the partition
}

func (f *UnsupportedPlatform) Kind() string { return "unsupported-platform" }

func (f *UnsupportedPlatform) Error() string {
	return fmt.Sprintf("unsupported platform %s: %s", f.Platform, strings.Join(f.Files, ", "))
}

// MissingDependency reports a mandatory dependency with no matching mod in
// the partition.
type MissingDependency struct {
	ModID        string // Mod declaring the dependency
	File         string
	DependencyID string
}

func (f *MissingDependency) Kind() string { return "missing-dependency" }

func (f *MissingDependency) Error() string {
	return fmt.Sprintf("missing dependency for %s (%s): %s", f.ModID, f.File, f.DependencyID)
}

// VersionConflict reports a dependency target whose version satisfies none
// of the declared range alternatives.
type VersionConflict struct {
	File         string // Jar declaring the requirement
	DependencyID string
	Required     string // Requirement text as declared
	Found        string // Version of the target actually present
	FoundFile    string
}

func (f *VersionConflict) Kind() string { return "version-conflict" }

func (f *VersionConflict) Error() string {
	return fmt.Sprintf("version conflict for %s: required %s %s, found %s (%s)",
		f.File, f.DependencyID, f.Required, f.Found, f.FoundFile)
}

// CircularDependency reports a requirement cycle. Chain holds the walk path
// from its entry point, ending with the repeated mod ID.
type CircularDependency struct {
	Chain []string
}

func (f *CircularDependency) Kind() string { return "circular-dependency" }

func (f *CircularDependency) Error() string {
	return "circular dependency detected: " + strings.Join(f.Chain, " -> ")
}

// InvalidVersionFormat reports a declared version or range expression that
// does not parse in either requirement grammar.
type InvalidVersionFormat struct {
	ModID   string
	File    string
	Version string // The offending text
}

func (f *InvalidVersionFormat) Kind() string { return "invalid-version-format" }

func (f *InvalidVersionFormat) Error() string {
	return fmt.Sprintf("invalid version format for %s (%s): %q", f.ModID, f.File, f.Version)
}
