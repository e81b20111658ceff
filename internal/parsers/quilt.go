package parsers

import (
	"archive/zip"
	"encoding/json"
	"fmt"

	"github.com/modpacker/modcheck/internal/jar"
	"github.com/modpacker/modcheck/internal/models"
)

const quiltManifest = "quilt.mod.json"

// QuiltParser parses quilt.mod.json documents. Quilt mods are recorded so
// their partition can be reported, but dependency analysis for the platform
// is unsupported; only identity fields are extracted.
type QuiltParser struct{}

// CanParse returns true for jars carrying a quilt.mod.json
func (p *QuiltParser) CanParse(r *zip.Reader) bool {
	return jar.HasEntry(r, quiltManifest)
}

// quiltMod represents the subset of quilt.mod.json this tool reads
type quiltMod struct {
	QuiltLoader struct {
		ID       string `json:"id"`
		Version  string `json:"version"`
		Metadata struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"metadata"`
	} `json:"quilt_loader"`
}

// Parse extracts the mod record from a Quilt jar
func (p *QuiltParser) Parse(r *zip.Reader, fileName string) ([]models.Mod, error) {
	content, err := jar.ReadEntry(r, quiltManifest)
	if err != nil {
		return nil, err
	}

	var qm quiltMod
	if err := json.Unmarshal(content, &qm); err != nil {
		return nil, fmt.Errorf("failed to parse %s from %s: %w", quiltManifest, fileName, err)
	}

	return []models.Mod{{
		ID:          qm.QuiltLoader.ID,
		Version:     qm.QuiltLoader.Version,
		Name:        qm.QuiltLoader.Metadata.Name,
		Description: qm.QuiltLoader.Metadata.Description,
		FileName:    fileName,
		Platform:    models.PlatformQuilt,
	}}, nil
}
