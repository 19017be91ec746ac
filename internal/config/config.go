package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/protolist-labs/protolist/internal/branding"
	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	fileName = "protolist"
	fileType = "yaml"
)

// ErrHomeNotSet is returned when the scan root variable is missing.
var ErrHomeNotSet = errors.New("home variable is not set")

// Settings are the generator settings after defaults, file and environment
// have been merged.
type Settings struct {
	Version    string   `mapstructure:"version" json:"version" yaml:"version"`
	Extension  string   `mapstructure:"extension" json:"extension" yaml:"extension"`
	Skipped    []string `mapstructure:"skipped" json:"skipped" yaml:"skipped"`
	Devices    []string `mapstructure:"devices" json:"devices" yaml:"devices"`
	Containers []string `mapstructure:"containers" json:"containers" yaml:"containers"`
	SlotNode   string   `mapstructure:"slot_node" json:"slot_node" yaml:"slot_node"`
	RemoteURL  string   `mapstructure:"remote_url" json:"remote_url" yaml:"remote_url"`
	LocalURL   string   `mapstructure:"local_url" json:"local_url" yaml:"local_url"`
	Output     string   `mapstructure:"output" json:"output" yaml:"output"`
	Format     string   `mapstructure:"format" json:"format" yaml:"format"`
	Workers    int      `mapstructure:"workers" json:"workers" yaml:"workers"`

	// File is the settings file that was merged, empty when none was found.
	File string `mapstructure:"-" json:"-" yaml:"-"`
}

// LoadOptions selects the settings file.
type LoadOptions struct {
	// ConfigFile is an explicit settings file; it must exist.
	ConfigFile string
	// SearchDirs are searched in order for protolist.yaml when ConfigFile is
	// empty. A missing file is not an error.
	SearchDirs []string
}

// Load merges the embedded defaults, the settings file and PROTOLIST_*
// environment variables, then validates the result.
func Load(opts LoadOptions) (*Settings, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("reading default settings: %w", err)
	}

	if opts.ConfigFile != "" || len(opts.SearchDirs) > 0 {
		if opts.ConfigFile != "" {
			v.SetConfigFile(opts.ConfigFile)
		} else {
			v.SetConfigName(fileName)
			for _, dir := range opts.SearchDirs {
				v.AddConfigPath(dir)
			}
		}

		if err := v.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok || opts.ConfigFile != "" {
				return nil, fmt.Errorf("reading settings file: %w", err)
			}
			// No settings file - defaults and environment only.
		}
	}

	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if opts.ConfigFile != "" || len(opts.SearchDirs) > 0 {
		s.File = v.ConfigFileUsed()
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the embedded default settings.
func Default() (*Settings, error) {
	return Load(LoadOptions{})
}

// OutputPath returns the catalog path, resolved against home when relative.
func (s *Settings) OutputPath(home string) string {
	if filepath.IsAbs(s.Output) {
		return s.Output
	}
	return filepath.Join(home, s.Output)
}

// LoadEnvFile reads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnvFile(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}

// Home returns the absolute scan root from the home variable (WEBOTS_HOME).
func Home() (string, error) {
	name := branding.HomeEnvVar()
	home := strings.TrimSpace(os.Getenv(name))
	if home == "" {
		return "", fmt.Errorf("%w: %s", ErrHomeNotSet, name)
	}
	abs, err := filepath.Abs(home)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", name, err)
	}
	return abs, nil
}
