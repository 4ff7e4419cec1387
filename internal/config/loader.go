package config

import (
	"embed"
	"os"

	"checkout/internal/errors"
	"checkout/internal/logging"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var configFS embed.FS

// ConfigLoader resolves the configuration from the embedded defaults,
// optional .env files and the process environment.
type ConfigLoader struct {
	logger   *logging.Logger
	envFiles []string
}

// NewConfigLoader creates a loader that reads ".env" and ".env.<binary>"
// from the working directory when they exist.
func NewConfigLoader(binaryName string) *ConfigLoader {
	return &ConfigLoader{
		logger:   logging.NewDefaultLogger("config"),
		envFiles: []string{".env", ".env." + binaryName},
	}
}

// WithEnvFiles replaces the list of .env files to read
func (cl *ConfigLoader) WithEnvFiles(files ...string) *ConfigLoader {
	cl.envFiles = files
	return cl
}

// Load returns the resolved configuration
func (cl *ConfigLoader) Load() (*Config, error) {
	cfg, err := cl.loadDefaults()
	if err != nil {
		return nil, err
	}

	if err := cl.loadEnvFiles(); err != nil {
		return nil, err
	}

	cfg.applyOverrides()
	if cfg.ListAPI.TimeoutSeconds <= 0 {
		return nil, errors.Configuration("list_api.timeout_seconds must be positive")
	}
	return cfg, nil
}

func (cl *ConfigLoader) loadDefaults() (*Config, error) {
	data, err := configFS.ReadFile("defaults.yaml")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfiguration,
			"failed to read embedded defaults")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfiguration,
			"failed to parse defaults YAML")
	}
	return &cfg, nil
}

// loadEnvFiles never overrides variables already present in the environment
func (cl *ConfigLoader) loadEnvFiles() error {
	for _, name := range cl.envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfiguration,
				"failed to load env file "+name)
		}
		cl.logger.Debug("Loaded environment from %s", name)
	}
	return nil
}
