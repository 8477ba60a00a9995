package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tuncanbit/txe/pkg/logger"
)

// Index backend selectors for the deposit record index.
const (
	IndexMemory = "memory"
	IndexDisk   = "disk"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	Engine   EngineConfig   `yaml:"engine"`
	Logger   logger.Config  `yaml:"logger"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

type SecurityConfig struct {
	// APIKey guards the HTTP API. An empty key disables the check,
	// which is the expected setup for local runs.
	APIKey string `yaml:"api_key"`
}

type EngineConfig struct {
	// Index selects the deposit record index backend: "memory" keeps a
	// compact in-process index, "disk" spills it to a BoltDB file for
	// logs much larger than available memory.
	Index string `yaml:"index"`

	// IndexPath is the directory for the on-disk index. Defaults to the
	// system temp directory.
	IndexPath string `yaml:"index_path"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        "8080",
			Environment: "development",
		},
		Engine: EngineConfig{
			Index: IndexMemory,
		},
		Logger: logger.Config{
			Level: "info",
		},
	}
}

// Load reads the yaml config at path, layered over defaults. A missing
// config file is not an error: the CLI must run without any setup.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	config := Default()

	configData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(configData, config); err != nil {
		return nil, err
	}

	return config, nil
}
