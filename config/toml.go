package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// tomlWrapper mirrors configWrapper for the TOML format: a "[server]"
// table instead of a "server:" YAML key.
type tomlWrapper struct {
	Server tomlServerConfig `toml:"server"`
}

// tomlServerConfig duplicates ServerConfig's fields with toml tags, since
// goccy/go-yaml and BurntSushi/toml each want their own tag vocabulary on
// the struct they decode into.
type tomlServerConfig struct {
	Name         string `toml:"name"`
	Version      string `toml:"version"`
	Instructions string `toml:"instructions"`

	MaxLineBytes int `toml:"max_line_bytes"`

	MiddlewareTracing bool `toml:"middleware_tracing"`
	MiddlewareMetrics bool `toml:"middleware_metrics"`

	AuditLogPath string `toml:"audit_log_path"`

	DevPolicyExpr  string `toml:"dev_policy_expr"`
	ProdPolicyExpr string `toml:"prod_policy_expr"`
}

// LoadConfigTOML loads server configuration from a TOML file, for hosts
// that prefer TOML over YAML.
func LoadConfigTOML(path string) (*ServerConfig, error) {
	var wrapper tomlWrapper
	if _, err := toml.DecodeFile(path, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	s := wrapper.Server
	return &ServerConfig{
		Name:              s.Name,
		Version:           s.Version,
		Instructions:      s.Instructions,
		MaxLineBytes:      s.MaxLineBytes,
		MiddlewareTracing: s.MiddlewareTracing,
		MiddlewareMetrics: s.MiddlewareMetrics,
		AuditLogPath:      s.AuditLogPath,
		DevPolicyExpr:     s.DevPolicyExpr,
		ProdPolicyExpr:    s.ProdPolicyExpr,
	}, nil
}
