package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/remotesweep/client"
	"github.com/they4kman/remotesweep/game"
)

// BaseURLEnv overrides the service URL when set in the environment or .env.
const BaseURLEnv = "SWEEP_API_URL"

type Config struct {
	BaseURL    string          `yaml:"url"`
	Difficulty game.Difficulty `yaml:"-"`
	// DifficultyName is the YAML form of Difficulty
	DifficultyName string        `yaml:"difficulty"`
	Glyphs         string        `yaml:"glyphs"`
	Plain          bool          `yaml:"plain"`
	Timeout        time.Duration `yaml:"timeout"`
	LogLevel       string        `yaml:"log_level"`
	LogFile        string        `yaml:"log_file"`
	Dump           bool          `yaml:"dump"`
	// Director makes the computer play by picking random legal reveals
	Director bool `yaml:"director"`
	// DirectorInterval is the pause between director moves
	DirectorInterval time.Duration `yaml:"director_interval"`
}

func New() Config {
	return Config{
		BaseURL:          client.DefaultBaseURL,
		Difficulty:       game.DifficultyUnset,
		Glyphs:           game.EmojiGlyphs.Name,
		LogLevel:         "info",
		DirectorInterval: 500 * time.Millisecond,
	}
}

// LoadFile merges the YAML file at path over config. Keys absent from the
// file keep their current value.
func (config *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	if config.DifficultyName != "" {
		difficulty, err := game.ParseDifficulty(config.DifficultyName)
		if err != nil {
			return errors.Wrapf(err, "parse config %s", path)
		}
		config.Difficulty = difficulty
	}
	return nil
}

// LoadEnv applies BaseURLEnv from the .env file at path (when present) and
// then from the process environment, which wins.
func (config *Config) LoadEnv(path string) error {
	values, err := godotenv.Read(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "load %s", path)
	}
	if url := values[BaseURLEnv]; url != "" {
		config.BaseURL = url
	}
	if url := os.Getenv(BaseURLEnv); url != "" {
		config.BaseURL = url
	}
	return nil
}

func (config Config) GlyphSet() (game.GlyphSet, error) {
	return game.GlyphSetByName(config.Glyphs)
}

func (config Config) Client() client.Config {
	return client.Config{
		BaseURL: config.BaseURL,
		Timeout: config.Timeout,
	}
}
