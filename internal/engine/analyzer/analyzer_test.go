package analyzer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depconflict/internal/adapters/fs"
	"go.trai.ch/depconflict/internal/adapters/manifest"
	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/engine/analyzer"
)

// writeTree creates files below root from a map of slash-separated relative paths to content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func newAnalyzer() *analyzer.Analyzer {
	return analyzer.New(fs.NewWalker(), manifest.NewReader())
}

func defaultOptions(baseDir string) analyzer.Options {
	return analyzer.OptionsFromConfig(domain.DefaultConfig(), baseDir)
}

func TestAnalyze_LeftPadConflict(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"pkgA/package.json": `{"dependencies":{"left-pad":"1.0.0"}}`,
		"pkgB/package.json": `{"dependencies":{"left-pad":"1.3.0"}}`,
	})

	report, err := newAnalyzer().Analyze(context.Background(), root, defaultOptions(root))
	require.NoError(t, err)

	assert.Equal(t, root, report.Root)
	assert.Len(t, report.Manifests, 2)
	require.True(t, report.HasConflicts())
	assert.Equal(t, []domain.ConflictEntry{
		{
			Package: "left-pad",
			Versions: []domain.VersionUsage{
				{Version: "1.0.0", UsedBy: []string{filepath.Join("pkgA", "package.json")}},
				{Version: "1.3.0", UsedBy: []string{filepath.Join("pkgB", "package.json")}},
			},
		},
	}, report.Conflicts)
	assert.Nil(t, report.Suggestions)
}

func TestAnalyze_EmptyTree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"src/index.js": "module.exports = {}"})

	report, err := newAnalyzer().Analyze(context.Background(), root, defaultOptions(root))
	require.NoError(t, err)

	assert.Empty(t, report.Manifests)
	assert.Empty(t, report.Conflicts)
	assert.False(t, report.HasConflicts())
	assert.Equal(t, 0, report.Index.Len())
}

func TestAnalyze_NodeModulesContributeNothing(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/package.json":                         `{"dependencies":{"left-pad":"1.0.0"}}`,
		"app/node_modules/left-pad/package.json":   `{"dependencies":{"left-pad":"9.9.9"}}`,
		"node_modules/.pnpm/left-pad/package.json": `{"dependencies":{"left-pad":"8.8.8"}}`,
		".git/modules/vendored/package.json":       `{"dependencies":{"left-pad":"7.7.7"}}`,
	})

	report, err := newAnalyzer().Analyze(context.Background(), root, defaultOptions(root))
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "app", "package.json")}, report.Manifests)
	assert.Empty(t, report.Conflicts)
	for _, path := range report.Manifests {
		assert.NotContains(t, filepath.ToSlash(path), "/node_modules/")
	}
}

func TestAnalyze_SharedVersionIsOneRecord(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/package.json": `{"dependencies":{"react":"18.2.0"}}`,
		"b/package.json": `{"devDependencies":{"react":"18.2.0"}}`,
	})

	report, err := newAnalyzer().Analyze(context.Background(), root, defaultOptions(root))
	require.NoError(t, err)

	records := report.Index.Records("react")
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "package.json"),
		filepath.Join(root, "b", "package.json"),
	}, records[0].Consumers)
	assert.Empty(t, report.Conflicts)
}

func TestAnalyze_DevOverridesDirect(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/package.json": `{"dependencies":{"lodash":"4.17.20"},"devDependencies":{"lodash":"4.17.21"}}`,
		"b/package.json": `{"dependencies":{"lodash":"4.17.20"}}`,
	})

	t.Run("dev wins by default", func(t *testing.T) {
		report, err := newAnalyzer().Analyze(context.Background(), root, defaultOptions(root))
		require.NoError(t, err)
		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, []string{"4.17.21", "4.17.20"}, report.Conflicts[0].VersionStrings())
	})

	t.Run("direct wins when disabled", func(t *testing.T) {
		opts := defaultOptions(root)
		opts.Policy.DevOverridesDirect = false

		report, err := newAnalyzer().Analyze(context.Background(), root, opts)
		require.NoError(t, err)
		assert.Empty(t, report.Conflicts)
		assert.Len(t, report.Index.Records("lodash")[0].Consumers, 2)
	})
}

func TestAnalyze_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json":           `{"devDependencies":{"typescript":"5.4.0","eslint":"^8.0.0"}}`,
		"apps/web/package.json":  `{"dependencies":{"react":"^18.2.0","typescript":"5.3.3"}}`,
		"apps/docs/package.json": `{"dependencies":{"react":"^17.0.0"},"devDependencies":{"eslint":"^8.0.0"}}`,
		"libs/ui/package.json":   `{"dependencies":{"react":"^18.2.0"}}`,
	})

	a := newAnalyzer()
	first, err := a.Analyze(context.Background(), root, defaultOptions(root))
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), root, defaultOptions(root))
	require.NoError(t, err)

	assert.Equal(t, first.Conflicts, second.Conflicts)
	assert.Equal(t, first.Index.Names(), second.Index.Names())
	// Walk order is apps/docs, apps/web, libs/ui, then the root manifest.
	assert.Equal(t, []string{"react", "eslint", "typescript"}, first.Index.Names())

	require.Len(t, first.Conflicts, 2)
	assert.Equal(t, "react", first.Conflicts[0].Package)
	assert.Equal(t, []string{"^17.0.0", "^18.2.0"}, first.Conflicts[0].VersionStrings())
	assert.Equal(t, "typescript", first.Conflicts[1].Package)
	assert.Equal(t, []string{"5.3.3", "5.4.0"}, first.Conflicts[1].VersionStrings())
}

func TestAnalyze_WithSuggestions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/package.json": `{"dependencies":{"left-pad":"^1.0.0"}}`,
		"b/package.json": `{"dependencies":{"left-pad":"1.3.0"}}`,
	})

	opts := defaultOptions(root)
	opts.Suggest = true

	report, err := newAnalyzer().Analyze(context.Background(), root, opts)
	require.NoError(t, err)
	assert.Equal(t, []domain.Suggestion{
		{Package: "left-pad", Target: "1.3.0", Accepting: []string{"^1.0.0", "1.3.0"}},
	}, report.Suggestions)
}

func TestAnalyze_MalformedManifestAborts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/package.json": `{"dependencies":{"left-pad":"1.0.0"}}`,
		"b/package.json": `{"dependencies":`,
	})

	_, err := newAnalyzer().Analyze(context.Background(), root, defaultOptions(root))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestAnalyze_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	_, err := newAnalyzer().Analyze(context.Background(), root, defaultOptions(root))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRootNotFound)
}

func TestAnalyze_RelativeRoot(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"pkgA/package.json": `{"dependencies":{"left-pad":"1.0.0"}}`,
		"pkgB/package.json": `{"dependencies":{"left-pad":"1.3.0"}}`,
	})
	t.Chdir(root)

	abs, err := filepath.Abs(".")
	require.NoError(t, err)

	report, err := newAnalyzer().Analyze(context.Background(), ".", defaultOptions(abs))
	require.NoError(t, err)
	assert.Equal(t, abs, report.Root)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, []string{filepath.Join("pkgA", "package.json")}, report.Conflicts[0].Versions[0].UsedBy)
}

func TestAnalyze_SymlinkedWorkspace(t *testing.T) {
	root := t.TempDir()
	shared := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/package.json": `{"dependencies":{"left-pad":"1.0.0"}}`,
	})
	writeTree(t, shared, map[string]string{
		"package.json": `{"dependencies":{"left-pad":"1.3.0"}}`,
	})
	require.NoError(t, os.Symlink(shared, filepath.Join(root, "shared")))

	t.Run("followed by default", func(t *testing.T) {
		report, err := newAnalyzer().Analyze(context.Background(), root, defaultOptions(root))
		require.NoError(t, err)
		assert.Len(t, report.Manifests, 2)
		assert.True(t, report.HasConflicts())
	})

	t.Run("skipped when disabled", func(t *testing.T) {
		cfg := domain.DefaultConfig()
		cfg.FollowSymlinks = false

		report, err := newAnalyzer().Analyze(context.Background(), root, analyzer.OptionsFromConfig(cfg, root))
		require.NoError(t, err)
		assert.Len(t, report.Manifests, 1)
		assert.False(t, report.HasConflicts())
	})
}
