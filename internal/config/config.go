package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ConfigName is the file Load looks for in the config directory.
const ConfigName = "rotvis.cfg.json"

// ModelConfig names a prefab that can be previewed.
type ModelConfig struct {
	Name   string `json:"name" mapstructure:"name"`
	Prefab string `json:"prefab" mapstructure:"prefab"`
}

// InterpolationConfig holds the initial interpolation settings
type InterpolationConfig struct {
	Mode  string  `json:"mode" mapstructure:"mode"`
	Alpha float32 `json:"alpha" mapstructure:"alpha"`
}

// SweepConfig holds the alpha sweep animation settings
type SweepConfig struct {
	Duration time.Duration
	Easing   string
	Loop     bool
}

// SetDefaults registers every default value. Load calls it; callers that
// run without a config file can call it directly.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")
	viper.SetDefault("frameRate", 60)

	viper.SetDefault("rotation.rate", 60)

	viper.SetDefault("interpolation.mode", "euler")
	viper.SetDefault("interpolation.alpha", 0)

	viper.SetDefault("sweep.duration", "2s")
	viper.SetDefault("sweep.easing", "inOutQuad")
	viper.SetDefault("sweep.loop", true)

	viper.SetDefault("models", []map[string]string{
		{"name": "Axes", "prefab": "prefabs/axes.vox"},
	})
	viper.SetDefault("initialModel", "")
	viper.SetDefault("presetFile", "./rotvis.preset.json")
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. Defaults stay in
// effect when the file cannot be read.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetRotationRate returns the continuous rotation rate in degrees per second.
func GetRotationRate() float32 {
	return float32(viper.GetFloat64("rotation.rate"))
}

// GetFrameRate returns the frame rate, never less than 1.
func GetFrameRate() int {
	if r := viper.GetInt("frameRate"); r > 0 {
		return r
	}
	return 1
}

// GetFrameInterval returns the time between frames.
func GetFrameInterval() time.Duration {
	return time.Second / time.Duration(GetFrameRate())
}

func GetInterpolationConfig() InterpolationConfig {
	return InterpolationConfig{
		Mode:  viper.GetString("interpolation.mode"),
		Alpha: float32(viper.GetFloat64("interpolation.alpha")),
	}
}

// GetSweepConfig returns the sweep settings. A malformed duration is an
// error.
func GetSweepConfig() (SweepConfig, error) {
	raw := viper.GetString("sweep.duration")
	d, err := time.ParseDuration(raw)
	if err != nil {
		return SweepConfig{}, fmt.Errorf("sweep.duration %q: %w", raw, err)
	}
	return SweepConfig{
		Duration: d,
		Easing:   viper.GetString("sweep.easing"),
		Loop:     viper.GetBool("sweep.loop"),
	}, nil
}

// GetModels returns the configured model list.
func GetModels() ([]ModelConfig, error) {
	var models []ModelConfig
	if err := viper.UnmarshalKey("models", &models); err != nil {
		return nil, fmt.Errorf("models: %w", err)
	}
	return models, nil
}

func GetInitialModel() string {
	return viper.GetString("initialModel")
}
