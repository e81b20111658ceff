package reporter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/modpacker/modcheck/internal/models"
	"github.com/modpacker/modcheck/internal/resolver"
)

func satisfiedResult() Result {
	mods := []models.Mod{
		{ID: "lib", Version: "1.0.0", Platform: models.PlatformFabric, FileName: "lib.jar"},
		{ID: "app", Version: "2.0.0", Platform: models.PlatformFabric, FileName: "app.jar",
			Dependencies: []models.Dependency{{ModID: "lib", Versions: models.VersionRange{">=1.0.0"}, Mandatory: true}}},
	}
	return Result{Mods: mods, Ordered: mods}
}

func faultyResult() Result {
	return Result{
		Mods: []models.Mod{
			{ID: "a", Version: "1.0.0", Platform: models.PlatformForge, FileName: "a.jar"},
		},
		Faults: resolver.Report{
			&resolver.MissingDependency{ModID: "a", File: "a.jar", DependencyID: "b"},
			&resolver.CircularDependency{Chain: []string{"x", "y", "x"}},
			&resolver.UnsupportedPlatform{Platform: models.PlatformQuilt, Files: []string{"q.jar"}},
		},
	}
}

func TestGet(t *testing.T) {
	if _, ok := Get("json").(*JSONReporter); !ok {
		t.Error("Get(json) is not the JSON reporter")
	}
	if _, ok := Get("sarif").(*SARIFReporter); !ok {
		t.Error("Get(sarif) is not the SARIF reporter")
	}
	if _, ok := Get("terminal").(*TerminalReporter); !ok {
		t.Error("Get(terminal) is not the terminal reporter")
	}
	if _, ok := Get("").(*TerminalReporter); !ok {
		t.Error("Get default is not the terminal reporter")
	}
}

func TestTerminalReportSatisfied(t *testing.T) {
	out, err := (&TerminalReporter{}).Report(satisfiedResult())
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"2 mods analyzed",
		"All dependencies are satisfied!",
		"Load order:",
		"lib@1.0.0",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("terminal output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "lib@1.0.0") > strings.Index(text, "app@2.0.0") {
		t.Errorf("load order rendered out of order:\n%s", text)
	}
}

func TestTerminalReportFaults(t *testing.T) {
	out, err := (&TerminalReporter{}).Report(faultyResult())
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"Found 3 dependency faults",
		"missing dependency for a (a.jar): b",
		"circular dependency detected: x -> y -> x",
		"unsupported platform Quilt: q.jar",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("terminal output missing %q:\n%s", want, text)
		}
	}
}

func TestJSONReport(t *testing.T) {
	out, err := (&JSONReporter{}).Report(faultyResult())
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	var decoded struct {
		Summary struct {
			ModsAnalyzed int  `json:"mods_analyzed"`
			TotalFaults  int  `json:"total_faults"`
			Satisfied    bool `json:"satisfied"`
		} `json:"summary"`
		Faults []struct {
			Type         string   `json:"type"`
			DependencyID string   `json:"dependency_id"`
			Chain        []string `json:"chain"`
		} `json:"faults"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Summary.ModsAnalyzed != 1 || decoded.Summary.TotalFaults != 3 || decoded.Summary.Satisfied {
		t.Errorf("summary = %+v", decoded.Summary)
	}
	if len(decoded.Faults) != 3 {
		t.Fatalf("got %d faults, want 3", len(decoded.Faults))
	}
	if decoded.Faults[0].Type != "missing-dependency" || decoded.Faults[0].DependencyID != "b" {
		t.Errorf("first fault = %+v", decoded.Faults[0])
	}
	if decoded.Faults[1].Type != "circular-dependency" || len(decoded.Faults[1].Chain) != 3 {
		t.Errorf("second fault = %+v", decoded.Faults[1])
	}
}

func TestJSONReportSatisfied(t *testing.T) {
	out, err := (&JSONReporter{}).Report(satisfiedResult())
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	var decoded struct {
		Summary struct {
			Satisfied bool `json:"satisfied"`
		} `json:"summary"`
		LoadOrder []struct {
			ID string `json:"id"`
		} `json:"load_order"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !decoded.Summary.Satisfied {
		t.Error("satisfied = false")
	}
	if len(decoded.LoadOrder) != 2 || decoded.LoadOrder[0].ID != "lib" {
		t.Errorf("load_order = %+v", decoded.LoadOrder)
	}
}

func TestSARIFReport(t *testing.T) {
	out, err := (&SARIFReporter{}).Report(faultyResult())
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	var decoded struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid SARIF JSON: %v", err)
	}

	if decoded.Version != "2.1.0" || len(decoded.Runs) != 1 {
		t.Fatalf("unexpected report shape: version=%s runs=%d", decoded.Version, len(decoded.Runs))
	}
	run := decoded.Runs[0]
	if run.Tool.Driver.Name != "modcheck" {
		t.Errorf("driver name = %s", run.Tool.Driver.Name)
	}

	// One rule per distinct fault kind, one result per fault
	if len(run.Tool.Driver.Rules) != 3 {
		t.Errorf("got %d rules, want 3", len(run.Tool.Driver.Rules))
	}
	if len(run.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(run.Results))
	}
	if run.Results[0].RuleID != "missing-dependency" {
		t.Errorf("first result rule = %s", run.Results[0].RuleID)
	}
	if uri := run.Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI; uri != "a.jar" {
		t.Errorf("first result location = %s", uri)
	}
}
