// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this package; Go's //go:embed bakes it into the
// binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	HomeEnvVar  string `yaml:"home_env_var"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "protolist",
			DisplayName: "ProtoList",
			Description: "Catalog generator for PROTO descriptor trees",
			EnvPrefix:   "PROTOLIST",
			HomeEnvVar:  "WEBOTS_HOME",
			GoModule:    "github.com/protolist-labs/protolist",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "protolist").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the settings environment variable prefix (e.g., "PROTOLIST").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// HomeEnvVar returns the variable holding the scan root (e.g., "WEBOTS_HOME").
func HomeEnvVar() string { load(); return defaults.HomeEnvVar }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("WORKERS") → "PROTOLIST_WORKERS".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
