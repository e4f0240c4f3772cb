package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ThatOtherAndrew/dollar/internal/recognizer"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "DOLLAR"

type Settings struct {
	NumPoints  int     `mapstructure:"num_points" yaml:"num_points"`
	SquareSize float64 `mapstructure:"square_size" yaml:"square_size"`
	Metric     string  `mapstructure:"metric" yaml:"metric"`
	// MinPoints is the shortest raw stroke worth recognizing.
	MinPoints int `mapstructure:"min_points" yaml:"min_points"`
	// Threshold is the lowest score accepted as a match.
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
	// Templates is an optional template library merged on top of the
	// built-in gestures.
	Templates string `mapstructure:"templates" yaml:"templates"`
}

func Defaults() *Settings {
	return &Settings{
		NumPoints:  recognizer.DefaultNumPoints,
		SquareSize: recognizer.DefaultSquareSize,
		Metric:     recognizer.Classic.String(),
		MinPoints:  10,
		Threshold:  0,
		Templates:  "",
	}
}

// Dir is where settings and template libraries live by default.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "dollar")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

func GetSettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

func GetTemplatesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gestures.yaml"), nil
}

// Load reads settings from path, creating it with defaults if it does not
// exist. DOLLAR_* environment variables override file values. Invalid values
// are logged and replaced with their defaults.
func Load(path string, logger *slog.Logger) (*Settings, error) {
	if logger == nil {
		logger = slog.Default()
	}
	defaultSettings := Defaults()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logger.Info("Creating default settings file", "path", path)
		if err := createDefaultSettings(path, defaultSettings); err != nil {
			logger.Warn("Failed to create default settings file", "error", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v, defaultSettings)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Invalid settings file, using defaults", "path", path, "error", err)
		return applyEnv(defaultSettings, logger), nil
	}

	knownKeys := getKnownKeys(Settings{})
	for _, key := range v.AllKeys() {
		if !knownKeys[key] {
			logger.Warn("Unrecognised setting key in settings file", "key", key)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		logger.Warn("Invalid settings file, using defaults", "path", path, "error", err)
		return applyEnv(defaultSettings, logger), nil
	}

	validate(settings, defaultSettings, logger)
	return settings, nil
}

// applyEnv is used when the file cannot be decoded: defaults, plus whatever
// the environment sets.
func applyEnv(defaults *Settings, logger *slog.Logger) *Settings {
	env := viper.New()
	env.SetEnvPrefix(EnvPrefix)
	env.AutomaticEnv()
	setDefaults(env, defaults)
	settings := &Settings{}
	if err := env.Unmarshal(settings); err != nil {
		return defaults
	}
	validate(settings, Defaults(), logger)
	return settings
}

func setDefaults(v *viper.Viper, s *Settings) {
	v.SetDefault("num_points", s.NumPoints)
	v.SetDefault("square_size", s.SquareSize)
	v.SetDefault("metric", s.Metric)
	v.SetDefault("min_points", s.MinPoints)
	v.SetDefault("threshold", s.Threshold)
	v.SetDefault("templates", s.Templates)
}

func validate(settings, defaults *Settings, logger *slog.Logger) {
	if settings.NumPoints < 2 {
		logger.Warn("Invalid num_points, must be at least 2, using default",
			"value", settings.NumPoints, "default", defaults.NumPoints)
		settings.NumPoints = defaults.NumPoints
	}
	if !(settings.SquareSize > 0) || math.IsInf(settings.SquareSize, 0) {
		logger.Warn("Invalid square_size, must be positive and finite, using default",
			"value", settings.SquareSize, "default", defaults.SquareSize)
		settings.SquareSize = defaults.SquareSize
	}
	if _, err := recognizer.ParseMetric(settings.Metric); err != nil {
		logger.Warn("Invalid metric, using default",
			"value", settings.Metric, "default", defaults.Metric)
		settings.Metric = defaults.Metric
	}
	if settings.MinPoints < 2 {
		logger.Warn("Invalid min_points, must be at least 2, using default",
			"value", settings.MinPoints, "default", defaults.MinPoints)
		settings.MinPoints = defaults.MinPoints
	}
}

// RecognizerOptions turns settings into recognizer construction options.
func (s *Settings) RecognizerOptions() ([]recognizer.Option, error) {
	metric, err := recognizer.ParseMetric(s.Metric)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return []recognizer.Option{
		recognizer.WithNumPoints(s.NumPoints),
		recognizer.WithSquareSize(s.SquareSize),
		recognizer.WithMetric(metric),
	}, nil
}

func createDefaultSettings(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("mapstructure"); tag != "" {
			// Handle tags like "field,omitempty"
			tagName := strings.Split(tag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
