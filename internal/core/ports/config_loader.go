package ports

import "go.trai.ch/depconflict/internal/core/domain"

// ConfigLoader defines the interface for loading the scan configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load looks for a config file in dir and its parents and returns the resolved configuration.
	// Defaults are returned when no config file exists.
	Load(dir string) (*domain.Config, error)
	// LoadFile reads the config file at path without any discovery.
	LoadFile(path string) (*domain.Config, error)
}
