// Package config holds the serve command's configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServeConfig configures the ftl-tools serve command.
type ServeConfig struct {
	// Listen is the address the HTTP server binds to.
	Listen string `yaml:"listen"`

	// Spec is a path or URL to an OpenAPI document whose operations are
	// registered as tools.
	Spec string `yaml:"spec"`

	// BaseURL overrides the upstream base URL proxied calls are sent to.
	// Defaults to the spec URL's origin.
	BaseURL string `yaml:"baseUrl"`

	// Auth is an Authorization header value applied to proxied calls.
	// Supports 1Password secret references (op://vault/item/field).
	Auth string `yaml:"auth"`

	// DisabledTools lists tool names that are skipped at registration.
	DisabledTools []string `yaml:"disabledTools"`

	// Timeout bounds each proxied request.
	Timeout time.Duration `yaml:"timeout"`

	// Retries is the maximum number of retries for failed proxied requests.
	Retries int `yaml:"retries"`
}

// Default returns the configuration used when no file is given.
func Default() *ServeConfig {
	return &ServeConfig{
		Listen:  ":3000",
		Timeout: 60 * time.Second,
		Retries: 3,
	}
}

// LoadFile loads configuration from a YAML file, falling back to defaults
// when the path is empty or the file does not exist.
func LoadFile(path string) (*ServeConfig, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load loads configuration from an io.Reader.
func Load(r io.Reader) (*ServeConfig, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config YAML: %w", err)
	}

	return cfg, nil
}

// IsToolDisabled checks if a tool name is in the disabled list.
func (c *ServeConfig) IsToolDisabled(name string) bool {
	for _, disabled := range c.DisabledTools {
		if disabled == name {
			return true
		}
	}
	return false
}
