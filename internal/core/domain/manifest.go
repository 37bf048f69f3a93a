package domain

import "path/filepath"

// Dependency is a single package request declared by a manifest.
type Dependency struct {
	Name    string
	Version string
}

// Manifest is the subset of a package.json document the analyzer reads.
// Dependency sections keep the key order of the source document.
type Manifest struct {
	Path            string
	Name            string
	Dependencies    []Dependency
	DevDependencies []Dependency
}

// MergePolicy controls how the dependency sections of one manifest are combined.
type MergePolicy struct {
	// DevOverridesDirect selects the devDependencies version for a package
	// declared in both sections. When false the dependencies version is kept.
	DevOverridesDirect bool
}

// DefaultMergePolicy returns the policy where development dependencies win.
func DefaultMergePolicy() MergePolicy {
	return MergePolicy{DevOverridesDirect: true}
}

// Requests returns the merged dependency requests of the manifest.
//
// Names appear once, in the position of their first declaration: dependencies first,
// then devDependencies not already seen. Within a single section a repeated key keeps
// its first position and takes the last value.
func (m *Manifest) Requests(policy MergePolicy) []Dependency {
	merged := make([]Dependency, 0, len(m.Dependencies)+len(m.DevDependencies))
	positions := make(map[string]int, cap(merged))

	merge := func(section []Dependency, override bool) {
		introduced := make(map[string]bool, len(section))
		for _, dep := range section {
			idx, exists := positions[dep.Name]
			if !exists {
				positions[dep.Name] = len(merged)
				merged = append(merged, dep)
				introduced[dep.Name] = true
				continue
			}
			if override || introduced[dep.Name] {
				merged[idx].Version = dep.Version
			}
		}
	}

	merge(m.Dependencies, true)
	merge(m.DevDependencies, policy.DevOverridesDirect)

	return merged
}

// WalkOptions configures manifest discovery.
type WalkOptions struct {
	// Exclude holds directory names (or filepath.Match patterns) that are never entered.
	Exclude []string
	// SkipSymlinks stops the walker from descending into symlinked directories.
	// Followed links are guarded against cycles with a set of visited canonical paths.
	SkipSymlinks bool
}

// Excludes reports whether a directory with the given base name is skipped.
// Patterns match either exactly or as filepath.Match globs; malformed patterns never match.
func (o WalkOptions) Excludes(name string) bool {
	for _, pattern := range o.Exclude {
		if pattern == name {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
