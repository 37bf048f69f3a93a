package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depconflict/internal/adapters/config"
	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const root = "/work"

func newMapLoader(t *testing.T, files fstest.MapFS) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoaderWithFS(config.NewMapFSAdapter(root, files), log), log
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	loader, _ := newMapLoader(t, fstest.MapFS{
		"repo/package.json": {Data: []byte(`{}`)},
	})

	cfg, err := loader.Load(filepath.Join(root, "repo"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.Empty(t, cfg.Path)
}

func TestLoad_FullFile(t *testing.T) {
	content := `
version: "1"
exclude:
  - node_modules
  - .git
  - dist
devOverridesDirect: false
failOnConflict: true
format: json
color: never
suggest: true
followSymlinks: false
concurrency: 2
snapshot: true
`
	loader, _ := newMapLoader(t, fstest.MapFS{
		"repo/.depconflict.yaml": {Data: []byte(content)},
	})

	cfg, err := loader.Load(filepath.Join(root, "repo"))
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		Path:               filepath.Join(root, "repo", ".depconflict.yaml"),
		Exclude:            []string{"node_modules", ".git", "dist"},
		DevOverridesDirect: false,
		FailOnConflict:     true,
		Format:             domain.FormatJSON,
		Color:              domain.ColorNever,
		Suggest:            true,
		FollowSymlinks:     false,
		Concurrency:        2,
		Snapshot:           true,
	}, cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	loader, _ := newMapLoader(t, fstest.MapFS{
		"repo/.depconflict.yaml": {Data: []byte("failOnConflict: true\n")},
	})

	cfg, err := loader.Load(filepath.Join(root, "repo"))
	require.NoError(t, err)

	assert.True(t, cfg.FailOnConflict)
	assert.True(t, cfg.DevOverridesDirect)
	assert.Equal(t, domain.DefaultExcludes(), cfg.Exclude)
	assert.Equal(t, domain.FormatText, cfg.Format)
	assert.Equal(t, runtime.NumCPU(), cfg.Concurrency)
}

func TestLoad_EmptyFile(t *testing.T) {
	loader, _ := newMapLoader(t, fstest.MapFS{
		"repo/.depconflict.yaml": {Data: []byte("")},
	})

	cfg, err := loader.Load(filepath.Join(root, "repo"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultExcludes(), cfg.Exclude)
	assert.Equal(t, filepath.Join(root, "repo", ".depconflict.yaml"), cfg.Path)
}

func TestLoad_DiscoversParentFile(t *testing.T) {
	loader, _ := newMapLoader(t, fstest.MapFS{
		".depconflict.yaml":          {Data: []byte("suggest: true\n")},
		"repo/apps/web/package.json": {Data: []byte(`{}`)},
	})

	cfg, err := loader.Load(filepath.Join(root, "repo", "apps", "web"))
	require.NoError(t, err)
	assert.True(t, cfg.Suggest)
	assert.Equal(t, filepath.Join(root, ".depconflict.yaml"), cfg.Path)
}

func TestLoad_NearestFileWins(t *testing.T) {
	loader, _ := newMapLoader(t, fstest.MapFS{
		".depconflict.yaml":      {Data: []byte("format: json\n")},
		"repo/.depconflict.yaml": {Data: []byte("format: text\n")},
	})

	cfg, err := loader.Load(filepath.Join(root, "repo"))
	require.NoError(t, err)
	assert.Equal(t, domain.FormatText, cfg.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "exclude: [node_modules\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "excludes:\n  - dist\n", wantErr: domain.ErrConfigParseFailed},
		{name: "wrong type", content: "concurrency: many\n", wantErr: domain.ErrConfigParseFailed},
		{name: "invalid format", content: "format: xml\n", wantErr: domain.ErrInvalidFormat},
		{name: "invalid color", content: "color: sometimes\n", wantErr: domain.ErrInvalidColorMode},
		{name: "negative concurrency", content: "concurrency: -1\n", wantErr: domain.ErrInvalidConcurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newMapLoader(t, fstest.MapFS{
				".depconflict.yaml": {Data: []byte(tt.content)},
			})

			_, err := loader.Load(root)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_WarnsOnUnknownVersion(t *testing.T) {
	loader, log := newMapLoader(t, fstest.MapFS{
		".depconflict.yaml": {Data: []byte("version: \"2\"\n")},
	})
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load(root)
	require.NoError(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	loader, _ := newMapLoader(t, fstest.MapFS{})

	_, err := loader.LoadFile(filepath.Join(root, "custom.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoad_OSFS(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "packages", "a")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(tmpDir, domain.ConfigFileName),
		[]byte("exclude: [node_modules, fixtures]\n"),
		0o600,
	))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, []string{"node_modules", "fixtures"}, cfg.Exclude)
}
