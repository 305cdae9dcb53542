package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI UIConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Placeholder string
	Greeting    string
	Accent      string
	Mask        bool
}

// Load reads configuration from file and env. Env var overrides use prefix
// SESSIONPANE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.placeholder", "Please log in.")
	v.SetDefault("ui.greeting", "Hello, %s! You are signed in.")
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.mask", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SESSIONPANE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sessionpane"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SESSIONPANE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
