package domain

import (
	"slices"
	"time"
)

// Snapshot is the persisted outcome of a previous scan.
type Snapshot struct {
	Fingerprint string          `json:"fingerprint"`
	CreatedAt   time.Time       `json:"createdAt"`
	Conflicts   []ConflictEntry `json:"conflicts"`
}

// Delta describes how conflicts changed since the previous snapshot.
type Delta struct {
	// PreviousFingerprint is the fingerprint of the snapshot compared against.
	PreviousFingerprint string `json:"previousFingerprint"`
	// Unchanged is true when the conflict list is identical to the snapshot.
	Unchanged bool `json:"unchanged"`
	// Introduced lists packages that conflict now but did not before.
	Introduced []string `json:"introduced,omitempty"`
	// Resolved lists packages that conflicted before but no longer do.
	Resolved []string `json:"resolved,omitempty"`
	// Changed lists packages that conflict in both scans with a different set of versions.
	Changed []string `json:"changed,omitempty"`
}

// Diff compares current conflicts, fingerprinted as fingerprint, with the snapshot.
func (s *Snapshot) Diff(fingerprint string, current []ConflictEntry) *Delta {
	delta := &Delta{PreviousFingerprint: s.Fingerprint}
	if s.Fingerprint == fingerprint {
		delta.Unchanged = true
		return delta
	}

	previous := make(map[string][]string, len(s.Conflicts))
	for _, c := range s.Conflicts {
		previous[c.Package] = c.VersionStrings()
	}

	seen := make(map[string]bool, len(current))
	for _, c := range current {
		seen[c.Package] = true
		versions, existed := previous[c.Package]
		switch {
		case !existed:
			delta.Introduced = append(delta.Introduced, c.Package)
		case !slices.Equal(versions, c.VersionStrings()):
			delta.Changed = append(delta.Changed, c.Package)
		}
	}

	for _, c := range s.Conflicts {
		if !seen[c.Package] {
			delta.Resolved = append(delta.Resolved, c.Package)
		}
	}

	delta.Unchanged = len(delta.Introduced) == 0 && len(delta.Resolved) == 0 && len(delta.Changed) == 0
	return delta
}
