package domain

import "go.trai.ch/zerr"

var (
	// ErrRootNotFound is returned when the directory to scan does not exist.
	ErrRootNotFound = zerr.New("scan root not found")

	// ErrRootNotDirectory is returned when the scan root exists but is not a directory.
	ErrRootNotDirectory = zerr.New("scan root is not a directory")

	// ErrDirectoryReadFailed is returned when a directory cannot be listed during the walk.
	ErrDirectoryReadFailed = zerr.New("failed to read directory")

	// ErrSymlinkResolveFailed is returned when a followed symlink cannot be resolved.
	ErrSymlinkResolveFailed = zerr.New("failed to resolve symlink")

	// ErrManifestReadFailed is returned when a manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a manifest is not well-formed JSON
	// or its dependency sections are not objects of version strings.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrConflictsFound is returned when conflicts exist and the run is configured to fail on them.
	ErrConflictsFound = zerr.New("dependency version conflicts found")

	// ErrInvalidFormat is returned when an unknown report format is requested.
	ErrInvalidFormat = zerr.New("invalid report format, expected 'text' or 'json'")

	// ErrInvalidColorMode is returned when an unknown color mode is requested.
	ErrInvalidColorMode = zerr.New("invalid color mode, expected 'auto', 'always' or 'never'")

	// ErrInvalidConcurrency is returned when the configured parse concurrency is negative.
	ErrInvalidConcurrency = zerr.New("concurrency must not be negative")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrReportWriteFailed is returned when the report cannot be written to the output stream.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrStoreCreateFailed is returned when the snapshot directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot directory")

	// ErrStoreReadFailed is returned when the previous snapshot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read snapshot")

	// ErrStoreUnmarshalFailed is returned when the previous snapshot cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal snapshot")

	// ErrStoreMarshalFailed is returned when the snapshot cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal snapshot")

	// ErrStoreWriteFailed is returned when the snapshot cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write snapshot")

	// ErrWatcherStartFailed is returned when the file system watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
