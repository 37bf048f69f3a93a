package analyzer

import (
	"path/filepath"

	"go.trai.ch/depconflict/internal/core/domain"
)

// Detect returns, in index order, every package requested at two or more distinct version strings.
// Consumer paths are made relative to baseDir; a path that cannot be made relative is kept as is.
// The index is not modified.
func Detect(index *domain.DependencyIndex, baseDir string) []domain.ConflictEntry {
	conflicts := make([]domain.ConflictEntry, 0)

	for name, records := range index.All() {
		if len(records) < 2 {
			continue
		}

		entry := domain.ConflictEntry{
			Package:  name,
			Versions: make([]domain.VersionUsage, len(records)),
		}
		for i, record := range records {
			usedBy := make([]string, len(record.Consumers))
			for j, consumer := range record.Consumers {
				usedBy[j] = relativeTo(baseDir, consumer)
			}
			entry.Versions[i] = domain.VersionUsage{Version: record.Version, UsedBy: usedBy}
		}
		conflicts = append(conflicts, entry)
	}

	return conflicts
}

func relativeTo(baseDir, path string) string {
	if baseDir == "" {
		return path
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return path
	}
	return rel
}
