// Package version implements the version requirement language used by mod
// metadata: semantic-version requirement sets (Fabric style) and Maven-style
// bracket intervals (Forge/NeoForge style).
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Constraint is a parsed version requirement expression.
type Constraint interface {
	// Matches reports whether v satisfies the constraint.
	Matches(v *semver.Version) bool

	// String returns the expression the constraint was parsed from.
	String() string
}

// Parse parses a requirement expression. Semver requirement syntax is tried
// first: comparator terms (">=1.2.0", "<2", "=1.5.0"), caret and tilde
// shorthands, wildcard patches ("1.19.x"), a bare version meaning an exact
// requirement, with comma-joined terms conjunctive. If that fails, the
// expression is parsed as a bracket interval: "[" or "(" lower "," upper
// "]" or ")", square brackets inclusive, parentheses exclusive, an empty
// bound position unbounded on that side.
func Parse(s string) (Constraint, error) {
	if strings.TrimSpace(s) == "" {
		// Masterminds reads an empty requirement as match-all; here an
		// empty expression is a declaration mistake, not a wildcard.
		return nil, fmt.Errorf("empty version requirement")
	}
	if req, err := semver.NewConstraint(s); err == nil {
		return &requirement{raw: strings.TrimSpace(s), req: req}, nil
	}
	return parseInterval(s)
}

// requirement is a semver requirement set, evaluated by Masterminds semver
// with its conventional pre-release rule: a pre-release version satisfies a
// comparator only when the comparator names a pre-release on the same
// release triple.
type requirement struct {
	raw string
	req *semver.Constraints
}

func (r *requirement) Matches(v *semver.Version) bool {
	return r.req.Check(v)
}

func (r *requirement) String() string {
	return r.raw
}

// bound is one endpoint of an interval. A nil version means the interval is
// unbounded on that side.
type bound struct {
	version   *semver.Version
	inclusive bool
}

// interval is a bracket-notation version range. Versions are compared by
// semver precedence on both endpoints.
type interval struct {
	raw      string
	min, max bound
}

func parseInterval(s string) (Constraint, error) {
	raw := strings.TrimSpace(s)
	if len(raw) < 2 {
		return nil, fmt.Errorf("invalid version range %q", s)
	}

	open, shut := raw[0], raw[len(raw)-1]
	if (open != '[' && open != '(') || (shut != ']' && shut != ')') {
		return nil, fmt.Errorf("invalid version range %q", s)
	}

	parts := strings.Split(raw[1:len(raw)-1], ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid version range %q: expected [min, max) or (min, max] form", s)
	}

	min, err := parseBound(parts[0], open == '[')
	if err != nil {
		return nil, fmt.Errorf("invalid version range %q: %w", s, err)
	}
	max, err := parseBound(parts[1], shut == ']')
	if err != nil {
		return nil, fmt.Errorf("invalid version range %q: %w", s, err)
	}

	return &interval{raw: raw, min: min, max: max}, nil
}

func parseBound(s string, inclusive bool) (bound, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return bound{}, nil
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return bound{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return bound{version: v, inclusive: inclusive}, nil
}

func (i *interval) Matches(v *semver.Version) bool {
	if min := i.min.version; min != nil {
		if c := v.Compare(min); c < 0 || (c == 0 && !i.min.inclusive) {
			return false
		}
	}
	if max := i.max.version; max != nil {
		if c := v.Compare(max); c > 0 || (c == 0 && !i.max.inclusive) {
			return false
		}
	}
	return true
}

func (i *interval) String() string {
	return i.raw
}
