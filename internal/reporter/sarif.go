package reporter

import (
	"encoding/json"
	"fmt"

	"github.com/modpacker/modcheck/internal/resolver"
)

// SARIFReporter outputs the analysis in SARIF format for GitHub Code Scanning
type SARIFReporter struct{}

// SARIF structures
type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ShortDescription sarifText       `json:"shortDescription"`
	FullDescription  sarifText       `json:"fullDescription"`
	DefaultConfig    sarifRuleConfig `json:"defaultConfiguration"`
	Properties       sarifProperties `json:"properties"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifRuleConfig struct {
	Level string `json:"level"`
}

type sarifProperties struct {
	Tags []string `json:"tags"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Level               string            `json:"level"`
	Message             sarifText         `json:"message"`
	Locations           []sarifLocation   `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

// ruleDescriptions holds the static rule metadata per fault kind
var ruleDescriptions = map[string]struct {
	name, short, full string
}{
	"unsupported-platform": {
		name:  "UnsupportedPlatform",
		short: "Mod platform is not supported for dependency analysis",
		full:  "The mods in this partition target a platform whose dependency metadata cannot be analyzed.",
	},
	"missing-dependency": {
		name:  "MissingDependency",
		short: "Mandatory dependency is not present in the mod set",
		full:  "A mod declares a mandatory dependency on a mod ID that no jar in the set provides.",
	},
	"version-conflict": {
		name:  "VersionConflict",
		short: "Dependency version does not satisfy the declared range",
		full:  "A dependency target is present, but its version satisfies none of the declared range alternatives.",
	},
	"circular-dependency": {
		name:  "CircularDependency",
		short: "Mods form a circular requirement chain",
		full:  "A chain of dependency declarations leads back to a mod already on the requirement path, so no valid load order exists for it.",
	},
	"invalid-version-format": {
		name:  "InvalidVersionFormat",
		short: "Version or range expression does not parse",
		full:  "A declared version or range expression is valid in neither the semantic-version requirement grammar nor the bracket interval grammar.",
	},
}

// Report generates SARIF output for the given analysis result
func (r *SARIFReporter) Report(result Result) ([]byte, error) {
	rules, ruleIndexMap := r.buildRules(result.Faults)

	report := sarifReport{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:           "modcheck",
					Version:        "1.0.0",
					InformationURI: "https://github.com/modpacker/modcheck",
					Rules:          rules,
				},
			},
			Results: r.buildResults(result.Faults, ruleIndexMap),
		}},
	}

	return json.MarshalIndent(report, "", "  ")
}

func (r *SARIFReporter) buildRules(faults resolver.Report) ([]sarifRule, map[string]int) {
	var rules []sarifRule
	ruleIndexMap := make(map[string]int)

	for _, f := range faults {
		kind := f.Kind()
		if _, exists := ruleIndexMap[kind]; exists {
			continue
		}

		desc := ruleDescriptions[kind]
		ruleIndexMap[kind] = len(rules)
		rules = append(rules, sarifRule{
			ID:               kind,
			Name:             desc.name,
			ShortDescription: sarifText{Text: desc.short},
			FullDescription:  sarifText{Text: desc.full},
			DefaultConfig:    sarifRuleConfig{Level: "error"},
			Properties: sarifProperties{
				Tags: []string{"dependency", "modpack"},
			},
		})
	}

	return rules, ruleIndexMap
}

func (r *SARIFReporter) buildResults(faults resolver.Report, ruleIndexMap map[string]int) []sarifResult {
	var results []sarifResult

	for i, f := range faults {
		var locations []sarifLocation
		for _, file := range faultFiles(f) {
			locations = append(locations, sarifLocation{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifact{URI: file},
				},
			})
		}

		results = append(results, sarifResult{
			RuleID:    f.Kind(),
			RuleIndex: ruleIndexMap[f.Kind()],
			Level:     "error",
			Message:   sarifText{Text: f.Error()},
			Locations: locations,
			PartialFingerprints: map[string]string{
				"faultHash": fmt.Sprintf("%s:%d", f.Kind(), i),
			},
		})
	}

	return results
}

// faultFiles returns the jar files a fault should be attributed to
func faultFiles(f resolver.Fault) []string {
	switch fault := f.(type) {
	case *resolver.UnsupportedPlatform:
		return fault.Files
	case *resolver.MissingDependency:
		return []string{fault.File}
	case *resolver.VersionConflict:
		return []string{fault.File}
	case *resolver.InvalidVersionFormat:
		return []string{fault.File}
	}
	return nil
}
