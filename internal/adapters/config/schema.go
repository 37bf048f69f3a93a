package config

import "go.trai.ch/depconflict/internal/core/domain"

// SchemaVersion is the config file version understood by this loader.
const SchemaVersion = "1"

// File represents the structure of the .depconflict.yaml configuration file.
// Pointer fields distinguish unset keys from explicit zero values.
type File struct {
	Version            string   `yaml:"version"`
	Exclude            []string `yaml:"exclude"`
	DevOverridesDirect *bool    `yaml:"devOverridesDirect"`
	FailOnConflict     *bool    `yaml:"failOnConflict"`
	Format             *string  `yaml:"format"`
	Color              *string  `yaml:"color"`
	Suggest            *bool    `yaml:"suggest"`
	FollowSymlinks     *bool    `yaml:"followSymlinks"`
	Concurrency        *int     `yaml:"concurrency"`
	Snapshot           *bool    `yaml:"snapshot"`
}

// apply overlays the keys set in the file onto cfg.
// An explicit exclude list replaces the defaults, so node_modules must be listed to stay excluded.
func (f *File) apply(cfg *domain.Config) {
	if f.Exclude != nil {
		cfg.Exclude = f.Exclude
	}
	setIf(&cfg.DevOverridesDirect, f.DevOverridesDirect)
	setIf(&cfg.FailOnConflict, f.FailOnConflict)
	setIf(&cfg.Format, f.Format)
	setIf(&cfg.Color, f.Color)
	setIf(&cfg.Suggest, f.Suggest)
	setIf(&cfg.FollowSymlinks, f.FollowSymlinks)
	setIf(&cfg.Concurrency, f.Concurrency)
	setIf(&cfg.Snapshot, f.Snapshot)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
