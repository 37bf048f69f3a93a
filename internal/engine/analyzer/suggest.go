package analyzer

import (
	"strings"

	mm "github.com/Masterminds/semver/v3"
	"go.trai.ch/depconflict/internal/core/domain"
)

// rangePrefix holds the characters stripped from a version string to find its base version.
const rangePrefix = "^~=<>v "

// Suggest proposes a target version for each conflict.
//
// The target is the highest concrete version found among the conflicting version strings,
// after stripping range operators. Strings without a base version (dist-tags, URLs,
// workspace protocols, compound ranges) are ignored; a conflict where none parse gets no suggestion.
func Suggest(conflicts []domain.ConflictEntry) []domain.Suggestion {
	suggestions := make([]domain.Suggestion, 0, len(conflicts))

	for _, conflict := range conflicts {
		target, ok := highestBase(conflict.VersionStrings())
		if !ok {
			continue
		}

		suggestion := domain.Suggestion{
			Package:   conflict.Package,
			Target:    target.String(),
			Accepting: make([]string, 0),
		}
		for _, raw := range conflict.VersionStrings() {
			if accepts(raw, target) {
				suggestion.Accepting = append(suggestion.Accepting, raw)
			}
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}

// BaseVersion extracts the version a simple range is anchored on, e.g. 1.2.0 for "^1.2.0".
func BaseVersion(raw string) (*mm.Version, bool) {
	trimmed := strings.TrimLeft(strings.TrimSpace(raw), rangePrefix)
	if trimmed == "" {
		return nil, false
	}
	v, err := mm.NewVersion(trimmed)
	if err != nil {
		return nil, false
	}
	return v, true
}

func highestBase(versions []string) (*mm.Version, bool) {
	var best *mm.Version
	for _, raw := range versions {
		v, ok := BaseVersion(raw)
		if !ok {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	return best, best != nil
}

func accepts(raw string, target *mm.Version) bool {
	c, err := mm.NewConstraint(raw)
	if err != nil {
		return false
	}
	return c.Check(target)
}
