package domain

import "path/filepath"

const (
	// ManifestFileName is the exact file name of a package manifest.
	ManifestFileName = "package.json"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = ".depconflict.yaml"

	// StateDirName is the name of the directory holding scan state inside the scanned root.
	StateDirName = ".depconflict"

	// SnapshotFileName is the name of the file holding the previous scan's conflicts.
	SnapshotFileName = "last-scan.json"

	// DependencyCacheDirName is the directory name package managers install dependencies into.
	DependencyCacheDirName = "node_modules"

	// VCSDirName is the directory name of version control metadata.
	VCSDirName = ".git"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultExcludes returns the directory names skipped by the walker when nothing else is configured.
func DefaultExcludes() []string {
	return []string{DependencyCacheDirName, VCSDirName}
}

// DefaultSnapshotPath returns the snapshot location relative to the scanned root.
// It joins .depconflict and last-scan.json.
func DefaultSnapshotPath() string {
	return filepath.Join(StateDirName, SnapshotFileName)
}
