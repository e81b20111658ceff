// Package resolver validates the dependency declarations of a batch of mods:
// every mandatory dependency present and version-compatible, no requirement
// cycles, every range expression well-formed. It works on the normalized
// records the parsers produce and performs no I/O; one Analyze call is one
// bounded, side-effect-free computation.
package resolver

import (
	"github.com/Masterminds/semver/v3"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/modpacker/modcheck/internal/models"
	"github.com/modpacker/modcheck/internal/version"
)

// builtinIDs are pseudo-dependencies satisfied by the host runtime or the
// mod loader itself. They are never resolved against the mod batch and their
// absence is never a fault.
var builtinIDs = mapset.NewThreadUnsafeSet(
	"minecraft",
	"forge",
	"fabricloader",
	"fabric-resource-loader-v0",
	"java",
	"neoforge",
)

// Analyze validates every dependency declaration in the batch. Mods are
// partitioned by platform (stable, in first-appearance order); each
// resolvable partition is linearized so that every mod follows the mods it
// depends on, while partitions on unsupported platforms yield a single
// UnsupportedPlatform fault. All partitions are always processed and their
// faults merged into one report.
//
// On success the combined load order is returned with a nil Report; the
// relative order between partitions is unspecified. Otherwise the Report
// holds every discovered fault in partition-then-discovery order.
func Analyze(mods []models.Mod) ([]models.Mod, Report) {
	var platforms []models.Platform
	groups := make(map[models.Platform][]*models.Mod)
	for i := range mods {
		p := mods[i].Platform
		if _, ok := groups[p]; !ok {
			platforms = append(platforms, p)
		}
		groups[p] = append(groups[p], &mods[i])
	}

	var ordered []models.Mod
	var faults Report

	for _, p := range platforms {
		group := groups[p]
		if !p.Resolvable() {
			files := make([]string, len(group))
			for i, m := range group {
				files[i] = m.FileName
			}
			faults = append(faults, &UnsupportedPlatform{Platform: p, Files: files})
			continue
		}

		resolved, errs := resolvePlatform(group)
		if len(errs) > 0 {
			faults = append(faults, errs...)
			continue
		}
		for _, m := range resolved {
			ordered = append(ordered, *m)
		}
	}

	if len(faults) > 0 {
		return nil, faults
	}
	return ordered, nil
}

// walker holds the per-partition marker state of one linearization.
type walker struct {
	byID       map[string]*models.Mod
	resolved   mapset.Set[string] // Fully processed mod IDs
	inProgress mapset.Set[string] // IDs on the current recursion path
	ordered    []*models.Mod
	faults     Report
}

// resolvePlatform linearizes one platform partition, returning either a
// dependency-respecting order or the full list of faults found.
func resolvePlatform(mods []*models.Mod) ([]*models.Mod, Report) {
	w := &walker{
		byID:       make(map[string]*models.Mod, len(mods)),
		resolved:   mapset.NewThreadUnsafeSet[string](),
		inProgress: mapset.NewThreadUnsafeSet[string](),
	}
	for _, m := range mods {
		w.byID[m.ID] = m
	}

	for _, m := range mods {
		if !w.resolved.Contains(m.ID) {
			w.visit(m, []string{m.ID})
		}
	}

	if len(w.faults) > 0 {
		return nil, w.faults
	}
	return w.ordered, nil
}

// visit processes every dependency of m in declaration order, recursing
// depth-first. The inProgress set bounds the walk: no mod is revisited
// mid-cycle, so the work is O(mods + edges) even on cyclic graphs.
func (w *walker) visit(m *models.Mod, path []string) {
	w.inProgress.Add(m.ID)

	for _, dep := range m.Dependencies {
		if builtinIDs.Contains(dep.ModID) {
			continue
		}
		if w.resolved.Contains(dep.ModID) {
			continue
		}
		if w.inProgress.Contains(dep.ModID) {
			chain := make([]string, 0, len(path)+1)
			chain = append(append(chain, path...), dep.ModID)
			w.faults = append(w.faults, &CircularDependency{Chain: chain})
			continue
		}

		target, ok := w.byID[dep.ModID]
		if !ok {
			if dep.Mandatory {
				w.faults = append(w.faults, &MissingDependency{
					ModID:        m.ID,
					File:         m.FileName,
					DependencyID: dep.ModID,
				})
			}
			continue
		}

		found, err := semver.NewVersion(target.Version)
		if err != nil {
			w.faults = append(w.faults, &InvalidVersionFormat{
				ModID:   target.ID,
				File:    target.FileName,
				Version: target.Version,
			})
			continue
		}

		// A version conflict on this edge does not stop the walk from
		// descending into the target; later faults behind it must still
		// surface in the same pass.
		w.checkVersions(m, dep, target, found)
		w.visit(target, append(path[:len(path):len(path)], dep.ModID))
	}

	w.inProgress.Remove(m.ID)
	w.resolved.Add(m.ID)
	w.ordered = append(w.ordered, m)
}

// checkVersions evaluates a dependency requirement against the target's
// parsed version. Alternatives are tried in order; an unparsable alternative
// is recorded as a fault without blocking the rest. A conflict is recorded
// when no alternative matched.
func (w *walker) checkVersions(m *models.Mod, dep models.Dependency, target *models.Mod, found *semver.Version) {
	matched := false
	for _, expr := range dep.Versions {
		c, err := version.Parse(expr)
		if err != nil {
			w.faults = append(w.faults, &InvalidVersionFormat{
				ModID:   dep.ModID,
				File:    m.FileName,
				Version: expr,
			})
			continue
		}
		if c.Matches(found) {
			matched = true
			break
		}
	}

	if !matched {
		w.faults = append(w.faults, &VersionConflict{
			File:         m.FileName,
			DependencyID: dep.ModID,
			Required:     dep.Versions.String(),
			Found:        target.Version,
			FoundFile:    target.FileName,
		})
	}
}
