package domain

// Report is the outcome of one scan.
type Report struct {
	// Root is the absolute path of the scanned directory.
	Root string `json:"root"`
	// Manifests are the discovered manifest paths in walk order.
	Manifests []string `json:"manifests"`
	// Index is the aggregated dependency index. It is not serialized.
	Index *DependencyIndex `json:"-"`
	// Conflicts are the packages requested at more than one version string.
	Conflicts []ConflictEntry `json:"conflicts"`
	// Suggestions holds one entry per conflict a target version could be derived for.
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	// Delta compares the conflicts with the previous snapshot, if one was consulted.
	Delta *Delta `json:"delta,omitempty"`
}

// HasConflicts reports whether the scan found any conflict.
func (r *Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// SuggestionFor returns the suggestion for pkg, if any.
func (r *Report) SuggestionFor(pkg string) (Suggestion, bool) {
	for _, s := range r.Suggestions {
		if s.Package == pkg {
			return s, true
		}
	}
	return Suggestion{}, false
}
