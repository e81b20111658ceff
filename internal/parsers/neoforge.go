package parsers

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/modpacker/modcheck/internal/jar"
	"github.com/modpacker/modcheck/internal/models"
)

const (
	neoforgeManifest = "META-INF/neoforge.mods.toml"
	javaManifest     = "META-INF/MANIFEST.MF"

	// jarVersionToken in a mod entry's version field stands for the
	// Implementation-Version of the jar's own manifest.
	jarVersionToken = "${file.jarVersion}"
)

// NeoForgeParser parses META-INF/neoforge.mods.toml documents
type NeoForgeParser struct{}

// CanParse returns true for jars carrying a META-INF/neoforge.mods.toml
func (p *NeoForgeParser) CanParse(r *zip.Reader) bool {
	return jar.HasEntry(r, neoforgeManifest)
}

// neoforgeFile represents the structure of neoforge.mods.toml. The layout
// matches the Forge document except for the dependency entries, which mark
// their nature with a type string instead of a mandatory flag.
type neoforgeFile struct {
	ModLoader     string          `toml:"modLoader"`
	LoaderVersion string          `toml:"loaderVersion"`
	License       string          `toml:"license"`
	Mods          []forgeModEntry `toml:"mods"`
	Dependencies  toml.Primitive  `toml:"dependencies"`
}

type neoforgeDependency struct {
	ModID        string `toml:"modId"`
	Type         string `toml:"type"` // "required", "optional", "incompatible", "discouraged"
	Reason       string `toml:"reason"`
	VersionRange string `toml:"versionRange"`
	Ordering     string `toml:"ordering"`
	Side         string `toml:"side"`
}

// Parse extracts mod records from a NeoForge jar. A version declared as
// ${file.jarVersion} is resolved against the jar manifest here, so the
// analysis only ever sees the final version string.
func (p *NeoForgeParser) Parse(r *zip.Reader, fileName string) ([]models.Mod, error) {
	content, err := jar.ReadEntry(r, neoforgeManifest)
	if err != nil {
		return nil, err
	}

	var file neoforgeFile
	md, err := toml.Decode(string(content), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s from %s: %w", neoforgeManifest, fileName, err)
	}
	if len(file.Mods) == 0 {
		return nil, fmt.Errorf("no [[mods]] entry in %s from %s", neoforgeManifest, fileName)
	}

	byMod, flat, err := decodeNeoforgeDependencies(md, file.Dependencies)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dependencies in %s from %s: %w", neoforgeManifest, fileName, err)
	}

	mods := make([]models.Mod, 0, len(file.Mods))
	for _, entry := range file.Mods {
		version := entry.Version
		if version == jarVersionToken {
			version, err = implementationVersion(r)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve %s in %s: %w", jarVersionToken, fileName, err)
			}
		}

		mods = append(mods, models.Mod{
			ID:           entry.ModID,
			Version:      version,
			Name:         entry.DisplayName,
			Description:  entry.Description,
			Authors:      entry.Authors,
			FileName:     fileName,
			Platform:     models.PlatformNeoForge,
			Dependencies: neoforgeDependenciesFor(entry.ModID, byMod, flat),
		})
	}
	return mods, nil
}

func decodeNeoforgeDependencies(md toml.MetaData, prim toml.Primitive) (map[string][]neoforgeDependency, []neoforgeDependency, error) {
	if !md.IsDefined("dependencies") {
		return nil, nil, nil
	}

	byMod := make(map[string][]neoforgeDependency)
	if err := md.PrimitiveDecode(prim, &byMod); err == nil {
		return byMod, nil, nil
	}

	var flat []neoforgeDependency
	if err := md.PrimitiveDecode(prim, &flat); err != nil {
		return nil, nil, err
	}
	return nil, flat, nil
}

func neoforgeDependenciesFor(modID string, byMod map[string][]neoforgeDependency, flat []neoforgeDependency) []models.Dependency {
	entries := flat
	if byMod != nil {
		entries = byMod[modID]
	}

	deps := make([]models.Dependency, 0, len(entries))
	for _, e := range entries {
		deps = append(deps, models.Dependency{
			ModID:     e.ModID,
			Versions:  models.VersionRange{e.VersionRange},
			Mandatory: e.Type == "required",
		})
	}
	return deps
}

// implementationVersion reads the Implementation-Version attribute from the
// jar's META-INF/MANIFEST.MF.
func implementationVersion(r *zip.Reader) (string, error) {
	content, err := jar.ReadEntry(r, javaManifest)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(content), "\n") {
		if v, ok := strings.CutPrefix(line, "Implementation-Version:"); ok {
			return strings.TrimSpace(v), nil
		}
	}
	return "", fmt.Errorf("Implementation-Version not found in %s", javaManifest)
}
