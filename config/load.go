package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "FLASHCARDS"
	configName = "flashcards"
	dotEnvFile = ".env"
)

// Defaults
const (
	DefaultBorder   = "double"
	DefaultTheme    = "default"
	DefaultVolume   = 0.5
	DefaultLogLevel = "info"
	DefaultLogDir   = "logs"
)

// DefaultSeedSets are the sets present at startup when nothing else is configured
var DefaultSeedSets = []string{"Test", "Test2"}

// Load reads configuration and validates it
// An empty path searches for flashcards.{toml,yaml,json} in the working directory
// and $XDG_CONFIG_HOME/flashcards, a missing file there is not an error
// Environment variables take precedence over the config file
func Load(path string) (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no source overrides anything
func Default() *Config {
	return &Config{
		UI:       UIConfig{Border: DefaultBorder, Theme: DefaultTheme},
		Audio:    AudioConfig{Enabled: false, Volume: DefaultVolume},
		Log:      LogConfig{Debug: false, Level: DefaultLogLevel, Dir: DefaultLogDir},
		SeedSets: append([]string(nil), DefaultSeedSets...),
	}
}

// Validate checks field constraints, used again after flags override loaded values
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ui.border", d.UI.Border)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.volume", d.Audio.Volume)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.dir", d.Log.Dir)
	v.SetDefault("seed_sets", d.SeedSets)
}

// loadDotEnv exports variables from path without overriding the real environment
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
