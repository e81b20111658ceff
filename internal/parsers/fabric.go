package parsers

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/modpacker/modcheck/internal/jar"
	"github.com/modpacker/modcheck/internal/models"
)

const fabricManifest = "fabric.mod.json"

// FabricParser parses fabric.mod.json documents
type FabricParser struct{}

// CanParse returns true for jars carrying a fabric.mod.json
func (p *FabricParser) CanParse(r *zip.Reader) bool {
	return jar.HasEntry(r, fabricManifest)
}

// fabricMod represents the structure of fabric.mod.json
type fabricMod struct {
	SchemaVersion int                       `json:"schemaVersion"`
	ID            string                    `json:"id"`
	Version       string                    `json:"version"`
	Name          string                    `json:"name"`
	Description   string                    `json:"description"`
	Authors       []fabricAuthor            `json:"authors"`
	License       json.RawMessage           `json:"license"`
	Environment   string                    `json:"environment"`
	Depends       map[string]fabricVersions `json:"depends"`
}

// fabricAuthor accepts either a plain name string or a {name, contact}
// object.
type fabricAuthor struct {
	Name string
}

func (a *fabricAuthor) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &a.Name); err == nil {
		return nil
	}
	var detailed struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &detailed); err != nil {
		return err
	}
	a.Name = detailed.Name
	return nil
}

// fabricVersions accepts either a single range expression or a list of
// alternatives.
type fabricVersions []string

func (v *fabricVersions) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = fabricVersions{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*v = many
	return nil
}

// Parse extracts the mod record from a Fabric jar
func (p *FabricParser) Parse(r *zip.Reader, fileName string) ([]models.Mod, error) {
	content, err := jar.ReadEntry(r, fabricManifest)
	if err != nil {
		return nil, err
	}

	var fm fabricMod
	if err := json.Unmarshal(content, &fm); err != nil {
		return nil, fmt.Errorf("failed to parse %s from %s: %w", fabricManifest, fileName, err)
	}

	authors := make([]string, 0, len(fm.Authors))
	for _, a := range fm.Authors {
		authors = append(authors, a.Name)
	}

	// JSON objects carry no order; sort dependency IDs so repeated runs
	// visit edges identically.
	ids := make([]string, 0, len(fm.Depends))
	for id := range fm.Depends {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	deps := make([]models.Dependency, 0, len(ids))
	for _, id := range ids {
		deps = append(deps, models.Dependency{
			ModID:     id,
			Versions:  models.VersionRange(fm.Depends[id]),
			Mandatory: true,
		})
	}

	return []models.Mod{{
		ID:           fm.ID,
		Version:      fm.Version,
		Name:         fm.Name,
		Description:  fm.Description,
		Authors:      authors,
		FileName:     fileName,
		Platform:     models.PlatformFabric,
		Dependencies: deps,
	}}, nil
}
