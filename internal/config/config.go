package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the opaque backend settings supplied by the hosting
// environment: where the document store lives, which tenant the app
// belongs to, and an optional pre-supplied sign-in token.
type Config struct {
	AppID    string `mapstructure:"app_id"`
	BasePath string `mapstructure:"base_path"`
	Token    string `mapstructure:"token"`
	Theme    string `mapstructure:"theme"`
}

const defaultAppID = "happy-thoughts"

// Load reads config from .happythings.yaml (cwd or home) and the
// HAPPY_* environment, in the usual viper precedence.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("app_id", defaultAppID)
	v.SetDefault("base_path", defaultBasePath())
	v.SetDefault("theme", "classic")
	// Registered so HAPPY_TOKEN binds even with no configured value.
	v.SetDefault("token", "")

	v.SetConfigName(".happythings")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("HAPPY")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("./")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine; everything has a default.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Token = strings.TrimSpace(cfg.Token)
	return cfg, nil
}

func defaultBasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".happythings.db"
	}
	return filepath.Join(home, ".happythings")
}
