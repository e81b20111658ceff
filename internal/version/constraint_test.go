package version

import (
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestParseMatches(t *testing.T) {
	tests := []struct {
		expr    string
		version string
		want    bool
	}{
		// Semver requirement grammar
		{">=0.14.0", "0.14.9", true},
		{">=0.14.0", "0.13.2", false},
		{">1.0.0", "1.0.0", false},
		{"<2.0.0", "1.9.9", true},
		{"<=2.0.0", "2.0.0", true},
		{"=1.5.0", "1.5.0", true},
		{"=1.5.0", "1.5.1", false},
		{"^1.2.3", "1.9.9", true},
		{"^1.2.3", "2.0.0", false},
		{"^0.2.3", "0.2.9", true},
		{"^0.2.3", "0.3.0", false},
		{"~1.2.3", "1.2.4", true},
		{"~1.2.3", "1.3.0", false},
		{"1.19.x", "1.19.4", true},
		{"1.19.x", "1.20.0", false},

		// Bare version is an exact requirement
		{"1.16.2", "1.16.2", true},
		{"1.16.2", "1.16.3", false},
		{"1.16.2", "1.17.0", false},

		// Comma-joined terms are conjunctive
		{">=1.0.0, <2.0.0", "1.5.0", true},
		{">=1.0.0, <2.0.0", "2.0.0", false},

		// Pre-release visibility: a pre-release only satisfies a bound
		// naming a pre-release on the same release triple
		{">=1.16.0", "1.17.0-rc1", false},
		{">=1.17.0-0", "1.17.0-rc1", true},

		// Bracket interval grammar
		{"[1.0.2-f,)", "1.0.2-f", true},
		{"[1.0.2-f,)", "1.0.3", true},
		{"[1.0.2-f,)", "1.0.1", false},
		{"(1.0.0, 2.0.0]", "2.0.0", true},
		{"(1.0.0, 2.0.0]", "1.0.0", false},
		{"(1.0.0, 2.0.0]", "2.0.1", false},
		{"[1.0.0, 2.0.0)", "1.0.0", true},
		{"[1.0.0, 2.0.0)", "2.0.0", false},
		{"(,1.5.0]", "0.0.1", true},
		{"(,1.5.0]", "1.5.1", false},
		{"[,]", "42.0.0", true}, // Unbounded on both sides
	}

	for _, tt := range tests {
		t.Run(tt.expr+" vs "+tt.version, func(t *testing.T) {
			c, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.expr, err)
			}
			v := semver.MustParse(tt.version)
			if got := c.Matches(v); got != tt.want {
				t.Errorf("Parse(%q).Matches(%q) = %v, want %v", tt.expr, tt.version, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	exprs := []string{
		"",
		"nonsense version",
		"[1.0.0",
		"[1.21.0]", // Single-element bracket has no upper bound position
		"1.0.0, 2.0.0]",
		"[1.0.0, 2.0.0, 3.0.0]",
		"[garbage,)",
		"{1.0.0, 2.0.0}",
	}
	for _, expr := range exprs {
		if _, err := Parse(expr); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", expr)
		}
	}
}

func TestConstraintString(t *testing.T) {
	for _, expr := range []string{">=1.2.0", "^1.0.0", "[1.0.0, 2.0.0)", "(,1.5.0]"} {
		c, err := Parse(expr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", expr, err)
		}
		if got := c.String(); got != expr {
			t.Errorf("Parse(%q).String() = %q", expr, got)
		}
	}
}
