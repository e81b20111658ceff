package parsers

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/modpacker/modcheck/internal/jar"
	"github.com/modpacker/modcheck/internal/models"
)

const forgeManifest = "META-INF/mods.toml"

// ForgeParser parses META-INF/mods.toml documents
type ForgeParser struct{}

// CanParse returns true for jars carrying a META-INF/mods.toml
func (p *ForgeParser) CanParse(r *zip.Reader) bool {
	return jar.HasEntry(r, forgeManifest)
}

// forgeFile represents the structure of mods.toml. The dependencies table
// comes in two shapes ([[dependencies]] and [[dependencies.<modid>]]), so it
// is captured as a primitive and decoded in a second pass.
type forgeFile struct {
	ModLoader     string          `toml:"modLoader"`
	LoaderVersion string          `toml:"loaderVersion"`
	License       string          `toml:"license"`
	Mods          []forgeModEntry `toml:"mods"`
	Dependencies  toml.Primitive  `toml:"dependencies"`
}

type forgeModEntry struct {
	ModID       string      `toml:"modId"`
	Version     string      `toml:"version"`
	DisplayName string      `toml:"displayName"`
	Description string      `toml:"description"`
	Credits     string      `toml:"credits"`
	Authors     tomlAuthors `toml:"authors"`
}

type forgeDependency struct {
	ModID        string `toml:"modId"`
	Mandatory    bool   `toml:"mandatory"`
	VersionRange string `toml:"versionRange"`
	Ordering     string `toml:"ordering"`
	Side         string `toml:"side"`
}

// tomlAuthors accepts either a comma-separated string or an array of
// strings.
type tomlAuthors []string

func (a *tomlAuthors) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		for _, name := range strings.Split(val, ",") {
			if name = strings.TrimSpace(name); name != "" {
				*a = append(*a, name)
			}
		}
	case []any:
		for _, item := range val {
			name, ok := item.(string)
			if !ok {
				return fmt.Errorf("author entry is %T, not a string", item)
			}
			*a = append(*a, name)
		}
	default:
		return fmt.Errorf("unsupported authors value of type %T", v)
	}
	return nil
}

// Parse extracts mod records from a Forge jar
func (p *ForgeParser) Parse(r *zip.Reader, fileName string) ([]models.Mod, error) {
	content, err := jar.ReadEntry(r, forgeManifest)
	if err != nil {
		return nil, err
	}

	var file forgeFile
	md, err := toml.Decode(string(content), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s from %s: %w", forgeManifest, fileName, err)
	}
	if len(file.Mods) == 0 {
		return nil, fmt.Errorf("no [[mods]] entry in %s from %s", forgeManifest, fileName)
	}

	byMod, flat, err := decodeDependencyTables(md, file.Dependencies)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dependencies in %s from %s: %w", forgeManifest, fileName, err)
	}

	mods := make([]models.Mod, 0, len(file.Mods))
	for _, entry := range file.Mods {
		mods = append(mods, models.Mod{
			ID:           entry.ModID,
			Version:      entry.Version,
			Name:         entry.DisplayName,
			Description:  entry.Description,
			Authors:      entry.Authors,
			FileName:     fileName,
			Platform:     models.PlatformForge,
			Dependencies: forgeDependenciesFor(entry.ModID, byMod, flat),
		})
	}
	return mods, nil
}

// decodeDependencyTables decodes the dependencies primitive in whichever
// shape the file uses: keyed by mod ID, or one plain array.
func decodeDependencyTables(md toml.MetaData, prim toml.Primitive) (map[string][]forgeDependency, []forgeDependency, error) {
	if !md.IsDefined("dependencies") {
		return nil, nil, nil
	}

	byMod := make(map[string][]forgeDependency)
	if err := md.PrimitiveDecode(prim, &byMod); err == nil {
		return byMod, nil, nil
	}

	var flat []forgeDependency
	if err := md.PrimitiveDecode(prim, &flat); err != nil {
		return nil, nil, err
	}
	return nil, flat, nil
}

// forgeDependenciesFor normalizes the dependency entries that apply to the
// given mod ID. Entries from a plain array apply to every mod in the file.
func forgeDependenciesFor(modID string, byMod map[string][]forgeDependency, flat []forgeDependency) []models.Dependency {
	entries := flat
	if byMod != nil {
		entries = byMod[modID]
	}

	deps := make([]models.Dependency, 0, len(entries))
	for _, e := range entries {
		deps = append(deps, models.Dependency{
			ModID:     e.ModID,
			Versions:  models.VersionRange{e.VersionRange},
			Mandatory: e.Mandatory,
		})
	}
	return deps
}
