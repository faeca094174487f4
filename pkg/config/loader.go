package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".jig"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for jig settings.
const envPrefix = "JIG"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in projectRoot (when set), CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath, projectRoot string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		if projectRoot != "" {
			viperCfg.AddConfigPath(projectRoot)
		}
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	defaults := Default()

	viperCfg.SetDefault("extensions", defaults.Extensions)
	viperCfg.SetDefault("exclude", defaults.Exclude)
	viperCfg.SetDefault("literal_namespace_case", defaults.LiteralNamespaceCase)
	viperCfg.SetDefault("in_place", defaults.InPlace)
}
