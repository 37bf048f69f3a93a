package domain

// VersionUsage lists the manifests, as relative paths, requesting one version of a package.
type VersionUsage struct {
	Version string   `json:"version"`
	UsedBy  []string `json:"usedBy"`
}

// ConflictEntry describes a package requested at two or more distinct version strings.
type ConflictEntry struct {
	Package  string         `json:"package"`
	Versions []VersionUsage `json:"versions"`
}

// VersionStrings returns the conflicting version strings in index order.
func (c ConflictEntry) VersionStrings() []string {
	versions := make([]string, len(c.Versions))
	for i, v := range c.Versions {
		versions[i] = v.Version
	}
	return versions
}

// Suggestion proposes a single target version for a conflicting package.
type Suggestion struct {
	Package string `json:"package"`
	// Target is the highest concrete version found among the conflicting version strings.
	Target string `json:"target"`
	// Accepting lists the version strings whose range already admits Target.
	Accepting []string `json:"accepting"`
}
