package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/modpacker/modcheck/internal/jar"
	"github.com/modpacker/modcheck/internal/models"
	"github.com/modpacker/modcheck/internal/parsers"
)

// Scanner discovers mod jars and translates their metadata into normalized
// records for analysis
type Scanner struct {
	config  *models.Config
	parsers []parsers.Parser
}

// New creates a new Scanner with the given configuration
func New(config *models.Config) *Scanner {
	return &Scanner{
		config:  config,
		parsers: parsers.GetAllParsers(),
	}
}

// Scan loads every mod jar under the configured directory. Jars with no
// recognized metadata document, or whose metadata fails to parse, are
// skipped with a warning; they never abort the run.
func (s *Scanner) Scan() ([]models.Mod, error) {
	info, err := os.Stat(s.config.Dir)
	if err != nil {
		return nil, fmt.Errorf("mods directory not found: %s: %w", s.config.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", s.config.Dir)
	}

	var mods []models.Mod
	err = filepath.WalkDir(s.config.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".jar") {
			return nil
		}

		parsed, err := s.parseJar(p)
		if err != nil {
			log.Warn("skipping jar", "file", filepath.Base(p), "err", err)
			return nil
		}
		for _, m := range parsed {
			log.Debug("discovered mod", "id", m.ID, "version", m.Version,
				"platform", m.Platform, "file", m.FileName)
		}
		mods = append(mods, parsed...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mods, nil
}

// parseJar opens a jar and dispatches it to the first parser whose metadata
// document is present
func (s *Scanner) parseJar(path string) ([]models.Mod, error) {
	rc, err := jar.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	fileName := filepath.Base(path)
	for _, p := range s.parsers {
		if p.CanParse(&rc.Reader) {
			return p.Parse(&rc.Reader, fileName)
		}
	}
	return nil, fmt.Errorf("no recognized mod metadata in %s", fileName)
}
