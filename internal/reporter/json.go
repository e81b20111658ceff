package reporter

import (
	"encoding/json"
	"fmt"

	"github.com/modpacker/modcheck/internal/resolver"
)

// JSONReporter outputs the analysis in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Summary   jsonSummary `json:"summary"`
	LoadOrder []jsonMod   `json:"load_order,omitempty"`
	Faults    []jsonFault `json:"faults,omitempty"`
}

type jsonSummary struct {
	ModsAnalyzed int  `json:"mods_analyzed"`
	TotalFaults  int  `json:"total_faults"`
	Satisfied    bool `json:"satisfied"`
}

type jsonMod struct {
	ID       string `json:"id"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
	File     string `json:"file"`
}

type jsonFault struct {
	Type    string `json:"type"`
	Message string `json:"message"`

	Platform     string   `json:"platform,omitempty"`
	Files        []string `json:"files,omitempty"`
	ModID        string   `json:"mod_id,omitempty"`
	File         string   `json:"file,omitempty"`
	DependencyID string   `json:"dependency_id,omitempty"`
	Required     string   `json:"required,omitempty"`
	Found        string   `json:"found,omitempty"`
	FoundFile    string   `json:"found_file,omitempty"`
	Chain        []string `json:"chain,omitempty"`
	Version      string   `json:"version,omitempty"`
}

// Report generates JSON output for the given analysis result
func (r *JSONReporter) Report(result Result) ([]byte, error) {
	output := jsonOutput{
		Summary: jsonSummary{
			ModsAnalyzed: len(result.Mods),
			TotalFaults:  len(result.Faults),
			Satisfied:    result.Satisfied(),
		},
	}

	for _, m := range result.Ordered {
		output.LoadOrder = append(output.LoadOrder, jsonMod{
			ID:       m.ID,
			Version:  m.Version,
			Platform: string(m.Platform),
			File:     m.FileName,
		})
	}

	for _, f := range result.Faults {
		jf, err := convertFault(f)
		if err != nil {
			return nil, err
		}
		output.Faults = append(output.Faults, jf)
	}

	return json.MarshalIndent(output, "", "  ")
}

func convertFault(f resolver.Fault) (jsonFault, error) {
	jf := jsonFault{Type: f.Kind(), Message: f.Error()}

	switch fault := f.(type) {
	case *resolver.UnsupportedPlatform:
		jf.Platform = string(fault.Platform)
		jf.Files = fault.Files
	case *resolver.MissingDependency:
		jf.ModID = fault.ModID
		jf.File = fault.File
		jf.DependencyID = fault.DependencyID
	case *resolver.VersionConflict:
		jf.File = fault.File
		jf.DependencyID = fault.DependencyID
		jf.Required = fault.Required
		jf.Found = fault.Found
		jf.FoundFile = fault.FoundFile
	case *resolver.CircularDependency:
		jf.Chain = fault.Chain
	case *resolver.InvalidVersionFormat:
		jf.ModID = fault.ModID
		jf.File = fault.File
		jf.Version = fault.Version
	default:
		return jsonFault{}, fmt.Errorf("unknown fault type %T", f)
	}

	return jf, nil
}
