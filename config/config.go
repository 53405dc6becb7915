package config

// Config holds all application configuration
type Config struct {
	UI       UIConfig    `mapstructure:"ui" validate:"required"`
	Audio    AudioConfig `mapstructure:"audio"`
	Log      LogConfig   `mapstructure:"log" validate:"required"`
	SeedSets []string    `mapstructure:"seed_sets"`
}

// UIConfig selects the look of the terminal UI
type UIConfig struct {
	Border string `mapstructure:"border" validate:"required,oneof=single double rounded heavy none"`
	Theme  string `mapstructure:"theme" validate:"required,oneof=default mono"`
}

// AudioConfig controls the feedback cues
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume" validate:"gte=0,lte=1"`
}

// LogConfig controls the file logger, stdout belongs to the UI
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Dir   string `mapstructure:"dir" validate:"required"`
}
