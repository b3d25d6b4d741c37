// Package config loads the pagebot configuration from config.yaml and the
// Discord token from .env.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/discord-pagination/pagination-go/pagination"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// TokenEnv is the environment variable holding the bot token.
const TokenEnv = "DISCORD_TOKEN"

var ErrNoToken = errors.New(TokenEnv + " is not set")

type Config struct {
	Prefix        string           `yaml:"prefix" validate:"required,max=8"`
	PagesDir      string           `yaml:"pages_dir" validate:"required"`
	PageCacheSize int              `yaml:"page_cache_size" validate:"gt=0"`
	Admins        []string         `yaml:"admins" validate:"dive,required,number"`
	Logging       LoggingConfig    `yaml:"logging"`
	Pagination    PaginationConfig `yaml:"pagination"`

	// Dir is the directory of the file the configuration was loaded from.
	Dir string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=panic fatal error warn warning info debug trace"`
}

// PaginationConfig is the yaml form of pagination.Options. Empty fields keep
// the library defaults.
type PaginationConfig struct {
	NextLabel   string        `yaml:"next_label" validate:"max=80"`
	NextStyle   string        `yaml:"next_style" validate:"omitempty,oneof=primary secondary success danger"`
	BackLabel   string        `yaml:"back_label" validate:"max=80"`
	BackStyle   string        `yaml:"back_style" validate:"omitempty,oneof=primary secondary success danger"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	TimeoutMode string        `yaml:"timeout_mode" validate:"omitempty,oneof=idle fixed"`
	LogLevel    string        `yaml:"log_level" validate:"omitempty,oneof=none error warning warn info verbose debug"`
}

var defaults = Config{
	Prefix:        "!",
	PagesDir:      "pages",
	PageCacheSize: 32,
	Logging:       LoggingConfig{Level: "info"},
	Pagination:    PaginationConfig{LogLevel: "warning"},
}

var validate = validator.New()

var buttonStyles = map[string]discordgo.ButtonStyle{
	"primary":   discordgo.PrimaryButton,
	"secondary": discordgo.SecondaryButton,
	"success":   discordgo.SuccessButton,
	"danger":    discordgo.DangerButton,
}

var timeoutModes = map[string]pagination.TimeoutMode{
	"idle":  pagination.TimeoutIdle,
	"fixed": pagination.TimeoutFixed,
}

// Load reads the configuration at path. With an empty path, config.yaml is
// looked up from the working directory upwards. A relative PagesDir is
// resolved against the directory of the configuration file.
func Load(path string) (*Config, error) {
	if path == "" {
		base := GetBasePath()
		if base == "" {
			return nil, fmt.Errorf("%s not found", CONFIG_FILE)
		}
		path = filepath.Join(base, CONFIG_FILE)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Dir = filepath.Dir(path)
	if !filepath.IsAbs(c.PagesDir) {
		c.PagesDir = filepath.Join(c.Dir, c.PagesDir)
	}
	return c, nil
}

// Parse decodes a configuration over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	c := defaults
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if err := validate.Struct(c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadToken loads the env file at path, or .env in dir when path is empty,
// and returns the bot token. Variables already set in the environment win
// over the file.
func LoadToken(path, dir string) (string, error) {
	if path == "" {
		path = filepath.Join(dir, ENV_FILE)
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	token := strings.TrimSpace(os.Getenv(TokenEnv))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// GetBasePath returns the closest directory, from the working directory
// upwards, holding config.yaml, or "" when there is none.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// LogLevel returns the logrus level of the bot.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// PaginationOptions translates the pagination section into options, logging
// through log.
func (c *Config) PaginationOptions(log *logrus.Logger) ([]pagination.Option, error) {
	pc := c.Pagination
	level, err := pagination.ParseLogLevel(pc.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []pagination.Option{
		pagination.WithOptions(pagination.Options{
			NextLabel:   pc.NextLabel,
			NextStyle:   buttonStyles[pc.NextStyle],
			BackLabel:   pc.BackLabel,
			BackStyle:   buttonStyles[pc.BackStyle],
			Timeout:     pc.Timeout,
			TimeoutMode: timeoutModes[pc.TimeoutMode],
		}),
		pagination.WithLogger(pagination.NewLogrusLogger(log)),
		pagination.WithLogLevel(level),
	}
	return opts, nil
}
