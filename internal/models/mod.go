package models

import "strings"

// Platform represents the mod loader ecosystem a mod targets. Dependency
// resolution never crosses platform boundaries.
type Platform string

const (
	PlatformForge    Platform = "Forge"
	PlatformFabric   Platform = "Fabric"
	PlatformNeoForge Platform = "NeoForge"
	PlatformQuilt    Platform = "Quilt"
)

// Resolvable returns true if dependency resolution is supported for this
// platform. Quilt and unrecognized platforms are reported as unsupported
// without per-mod analysis.
func (p Platform) Resolvable() bool {
	switch p {
	case PlatformForge, PlatformFabric, PlatformNeoForge:
		return true
	}
	return false
}

// Mod is the normalized metadata record every platform translator produces.
// Mod IDs are unique only within their platform partition, never globally.
type Mod struct {
	ID           string
	Version      string
	Name         string
	Description  string
	Authors      []string
	FileName     string // Jar file this mod was found in (for diagnostics)
	Platform     Platform
	Dependencies []Dependency
}

// String returns a human-readable representation
func (m Mod) String() string {
	return m.ID + "@" + m.Version
}

// VersionRange is a version requirement: one range expression, or a
// disjunction of alternatives satisfied when any alternative matches.
type VersionRange []string

// String renders the requirement the way mod loaders display disjunctions.
func (r VersionRange) String() string {
	return strings.Join(r, " || ")
}

// Dependency is a single dependency declaration of a mod.
type Dependency struct {
	ModID     string
	Versions  VersionRange
	Mandatory bool // false: only checked when the target is present
}
