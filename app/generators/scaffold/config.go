package scaffold

import (
	"fmt"

	"github.com/jrazmi/artisan/sdk/environment"
)

// Default namespaces, relative to the project base path.
const (
	DefaultRepositoriesNamespace = "app/infrastructures/repositories"
	DefaultServicesNamespace     = "app/infrastructures/services"
	DefaultModelsNamespace       = "app/models"
	InterfacesSegment            = "interfaces"
)

// Config controls where generated files land.
type Config struct {
	BasePath              string `toml:"base_path" env:"BASE_PATH" default:"."`
	StubsPath             string `toml:"stubs_path" env:"STUBS_PATH" default:"stubs"`
	ModulePath            string `toml:"module_path" env:"MODULE_PATH"`
	RepositoriesNamespace string `toml:"repositories_namespace" env:"REPOSITORIES_NAMESPACE" default:"app/infrastructures/repositories"`
	ServicesNamespace     string `toml:"services_namespace" env:"SERVICES_NAMESPACE" default:"app/infrastructures/services"`
	ModelsNamespace       string `toml:"models_namespace" env:"MODELS_NAMESPACE" default:"app/models"`
}

// DefaultConfig returns a Config rooted at the working directory.
func DefaultConfig() Config {
	return Config{
		BasePath:              ".",
		StubsPath:             "stubs",
		RepositoriesNamespace: DefaultRepositoriesNamespace,
		ServicesNamespace:     DefaultServicesNamespace,
		ModelsNamespace:       DefaultModelsNamespace,
	}
}

// LoadConfig reads an optional TOML file and prefixed environment variables.
// A non-empty basePath replaces the configured one. An empty ModulePath is
// then resolved from the nearest go.mod above BasePath.
func LoadConfig(prefix, path, basePath string) (Config, error) {
	var cfg Config
	if err := environment.Load(prefix, path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading scaffold config: %w", err)
	}
	if basePath != "" {
		cfg.BasePath = basePath
	}
	if cfg.ModulePath == "" {
		if mp, err := ModulePath(cfg.BasePath); err == nil {
			cfg.ModulePath = mp
		}
	}
	return cfg, nil
}

// InterfacesNamespace is where service interfaces are generated.
func (c Config) InterfacesNamespace() string {
	return c.ServicesNamespace + "/" + InterfacesSegment
}
