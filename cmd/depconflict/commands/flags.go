package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depconflict/internal/app"
	"go.trai.ch/depconflict/internal/core/domain"
)

const (
	flagConfig             = "config"
	flagFormat             = "format"
	flagColor              = "color"
	flagExclude            = "exclude"
	flagDevOverridesDirect = "dev-overrides-direct"
	flagFailOnConflict     = "fail-on-conflict"
	flagSuggest            = "suggest"
	flagSnapshot           = "snapshot"
	flagFollowSymlinks     = "follow-symlinks"
	flagConcurrency        = "concurrency"
)

// addScanFlags registers the scan flags as persistent flags so scan and watch share them.
func addScanFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP(flagConfig, "c", "", "Path to a config file (disables "+domain.ConfigFileName+" discovery)")
	flags.StringP(flagFormat, "f", domain.FormatText, "Report format: text or json")
	flags.String(flagColor, domain.ColorAuto, "Color output: auto, always or never")
	flags.StringSliceP(flagExclude, "e", domain.DefaultExcludes(), "Directory names or patterns to skip")
	flags.Bool(flagDevOverridesDirect, true, "Let devDependencies win when a package is declared in both sections")
	flags.Bool(flagFailOnConflict, false, "Exit with status 1 when conflicts are found")
	flags.Bool(flagSuggest, false, "Suggest a target version for each conflict")
	flags.Bool(flagSnapshot, false, "Compare with and update the last scan snapshot")
	flags.Bool(flagFollowSymlinks, true, "Follow symlinked directories")
	flags.Int(flagConcurrency, 0, "Maximum manifests parsed in parallel (0 means unbounded)")
}

// scanOptions collects the flags the user set explicitly. Unset flags keep configured values.
func scanOptions(cmd *cobra.Command) app.ScanOptions {
	flags := cmd.Flags()
	opts := app.ScanOptions{}
	opts.ConfigPath, _ = flags.GetString(flagConfig)

	if flags.Changed(flagFormat) {
		v, _ := flags.GetString(flagFormat)
		opts.Format = &v
	}
	if flags.Changed(flagColor) {
		v, _ := flags.GetString(flagColor)
		opts.Color = &v
	}
	if flags.Changed(flagExclude) {
		opts.Exclude, _ = flags.GetStringSlice(flagExclude)
	}
	opts.DevOverridesDirect = changedBool(cmd, flagDevOverridesDirect)
	opts.FailOnConflict = changedBool(cmd, flagFailOnConflict)
	opts.Suggest = changedBool(cmd, flagSuggest)
	opts.Snapshot = changedBool(cmd, flagSnapshot)
	opts.FollowSymlinks = changedBool(cmd, flagFollowSymlinks)
	if flags.Changed(flagConcurrency) {
		v, _ := flags.GetInt(flagConcurrency)
		opts.Concurrency = &v
	}
	return opts
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// targetDir returns the directory argument, defaulting to the working directory.
func targetDir(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
