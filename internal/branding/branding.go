// Package branding provides the product identity baked into the binary.
// Values come from the embedded branding.yaml, falling back to built-in
// defaults for any field it leaves empty.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

var current = sync.OnceValue(func() brand {
	b := brand{
		CLIName:     "uisx",
		DisplayName: "UISX",
		Description: "Web app extension resolver",
		HomeDir:     ".uisx",
		EnvPrefix:   "UISX",
	}
	_ = yaml.Unmarshal(rawBranding, &b)
	return b
})

// CLIName returns the root command name.
func CLIName() string { return current().CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { return current().DisplayName }

// Description returns the short product description.
func Description() string { return current().Description }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { return current().HomeDir }

// EnvPrefix returns the environment variable prefix.
func EnvPrefix() string { return current().EnvPrefix }

// EnvVar returns a fully qualified env var name, e.g. EnvVar("home") → "UISX_HOME".
func EnvVar(suffix string) string {
	return current().EnvPrefix + "_" + strings.ToUpper(suffix)
}
