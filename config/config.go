// Package config provides configuration file support for the mcpkit server
// launcher. It enables YAML-based configuration, following the same
// top-level-key wrapping and profile-resolution pattern the rest of the
// ecosystem's config loaders use.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ServerConfig represents the server configuration read from a YAML file.
// Configuration is read from the "server:" key; other top-level sections
// in the same file are ignored.
type ServerConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	Instructions string `yaml:"instructions"`

	MaxLineBytes int `yaml:"max_line_bytes"`

	MiddlewareTracing bool `yaml:"middleware_tracing"`
	MiddlewareMetrics bool `yaml:"middleware_metrics"`

	AuditLogPath string `yaml:"audit_log_path"`

	// Profile settings, resolved per-environment via GetProfileConfig.
	DevPolicyExpr  string `yaml:"dev_policy_expr"`
	ProdPolicyExpr string `yaml:"prod_policy_expr"`
}

// ProfileConfig is the resolved configuration for a single deployment
// profile.
type ProfileConfig struct {
	PolicyExpr string
}

// configWrapper scopes parsing to the "server:" section.
type configWrapper struct {
	Server ServerConfig `yaml:"server"`
}

// LoadConfig loads server configuration from a YAML file. It reads the
// "server:" section and ignores other sections.
func LoadConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var wrapper configWrapper
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &wrapper.Server, nil
}

// GetProfileConfig returns the resolved configuration for a specific
// deployment profile. Valid profiles are "dev" (default) and "prod";
// unknown profiles fall back to "dev".
func (c *ServerConfig) GetProfileConfig(profile string) ProfileConfig {
	if profile == "" {
		profile = "dev"
	}

	switch profile {
	case "prod":
		return ProfileConfig{PolicyExpr: c.ProdPolicyExpr}
	case "dev":
		fallthrough
	default:
		return ProfileConfig{PolicyExpr: c.DevPolicyExpr}
	}
}

// ValidProfiles returns the list of valid profile names.
func ValidProfiles() []string {
	return []string{"dev", "prod"}
}

// IsValidProfile checks if the given profile name is valid. Empty string
// is valid (defaults to "dev").
func IsValidProfile(profile string) bool {
	if profile == "" {
		return true
	}
	for _, p := range ValidProfiles() {
		if p == profile {
			return true
		}
	}
	return false
}
