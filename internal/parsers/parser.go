package parsers

import (
	"archive/zip"

	"github.com/modpacker/modcheck/internal/models"
)

// Parser is the interface for platform metadata translators. Each parser
// owns one metadata document format and produces fully normalized records;
// schema variants (author lists, dependency tables, version disjunctions)
// never leak past this boundary.
type Parser interface {
	// CanParse returns true if the jar carries this parser's metadata document
	CanParse(r *zip.Reader) bool

	// Parse extracts normalized mod records from the jar
	Parse(r *zip.Reader, fileName string) ([]models.Mod, error)
}

// GetAllParsers returns all available parsers in detection order. NeoForge
// is probed before Forge since a NeoForge jar may carry a legacy mods.toml
// alongside its own document.
func GetAllParsers() []Parser {
	return []Parser{
		&FabricParser{},
		&QuiltParser{},
		&NeoForgeParser{},
		&ForgeParser{},
	}
}
