// Package domain contains the core models of the dependency conflict analysis.
package domain

import "iter"

// DependencyRecord groups the manifests requesting one package at one exact version string.
type DependencyRecord struct {
	Version   string
	Consumers []string
}

// DependencyIndex maps package names to the distinct version strings requested for them.
// Names iterate in first-seen order, and the records of a name in first-seen-version order.
type DependencyIndex struct {
	names   []InternedString
	records map[InternedString][]DependencyRecord
}

// NewDependencyIndex creates an empty index.
func NewDependencyIndex() *DependencyIndex {
	return &DependencyIndex{
		records: make(map[InternedString][]DependencyRecord),
	}
}

// Add records that consumer requests name at version.
// Versions are compared by exact textual equality.
func (x *DependencyIndex) Add(name, version, consumer string) {
	key := NewInternedString(name)

	records, known := x.records[key]
	if !known {
		x.names = append(x.names, key)
	}

	for i := range records {
		if records[i].Version == version {
			records[i].Consumers = append(records[i].Consumers, consumer)
			return
		}
	}

	x.records[key] = append(records, DependencyRecord{
		Version:   version,
		Consumers: []string{consumer},
	})
}

// AddManifest adds every merged request of m to the index.
func (x *DependencyIndex) AddManifest(m *Manifest, policy MergePolicy) {
	for _, dep := range m.Requests(policy) {
		x.Add(dep.Name, dep.Version, m.Path)
	}
}

// Len returns the number of distinct package names.
func (x *DependencyIndex) Len() int {
	return len(x.names)
}

// Names returns the package names in first-seen order.
func (x *DependencyIndex) Names() []string {
	names := make([]string, len(x.names))
	for i, n := range x.names {
		names[i] = n.String()
	}
	return names
}

// Records returns the records for name, or nil if the name was never seen.
// The returned slice must not be modified.
func (x *DependencyIndex) Records(name string) []DependencyRecord {
	return x.records[NewInternedString(name)]
}

// All yields every package name with its records in index order.
// The yielded slices must not be modified.
func (x *DependencyIndex) All() iter.Seq2[string, []DependencyRecord] {
	return func(yield func(string, []DependencyRecord) bool) {
		for _, name := range x.names {
			if !yield(name.String(), x.records[name]) {
				return
			}
		}
	}
}
