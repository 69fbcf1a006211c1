package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
server:
  name: mcpkit-demo
  version: 0.1.0
  instructions: a demo mcpkit server
  max_line_bytes: 65536
  middleware_tracing: true
  middleware_metrics: true
  audit_log_path: /tmp/mcpkit-audit.jsonl
  dev_policy_expr: "true"
  prod_policy_expr: "method != \"tools/call\" || params.name != \"dangerous\""
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "mcpkit-demo" {
		t.Errorf("expected Name='mcpkit-demo', got %q", cfg.Name)
	}
	if cfg.Version != "0.1.0" {
		t.Errorf("expected Version='0.1.0', got %q", cfg.Version)
	}
	if cfg.MaxLineBytes != 65536 {
		t.Errorf("expected MaxLineBytes=65536, got %d", cfg.MaxLineBytes)
	}
	if !cfg.MiddlewareTracing {
		t.Error("expected MiddlewareTracing to be true")
	}
	if !cfg.MiddlewareMetrics {
		t.Error("expected MiddlewareMetrics to be true")
	}
	if cfg.AuditLogPath != "/tmp/mcpkit-audit.jsonl" {
		t.Errorf("expected AuditLogPath='/tmp/mcpkit-audit.jsonl', got %q", cfg.AuditLogPath)
	}
	if cfg.DevPolicyExpr != "true" {
		t.Errorf("expected DevPolicyExpr='true', got %q", cfg.DevPolicyExpr)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
server:
  name: broken
  invalid yaml here
  : broken
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
server:
  name: partial-server
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "partial-server" {
		t.Errorf("expected Name='partial-server', got %q", cfg.Name)
	}
	if cfg.MaxLineBytes != 0 {
		t.Errorf("expected MaxLineBytes to be zero-valued when unset, got %d", cfg.MaxLineBytes)
	}
}

func TestLoadConfig_EmptyServerSection(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
other:
  key: value
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg == nil {
		t.Error("expected non-nil config even for a missing server section")
	}
}

func TestGetProfileConfig_Dev(t *testing.T) {
	cfg := &ServerConfig{
		DevPolicyExpr:  "true",
		ProdPolicyExpr: "method != \"tools/call\"",
	}

	profile := cfg.GetProfileConfig("dev")
	if profile.PolicyExpr != "true" {
		t.Errorf("expected PolicyExpr='true', got %q", profile.PolicyExpr)
	}
}

func TestGetProfileConfig_Prod(t *testing.T) {
	cfg := &ServerConfig{
		DevPolicyExpr:  "true",
		ProdPolicyExpr: "method != \"tools/call\"",
	}

	profile := cfg.GetProfileConfig("prod")
	if profile.PolicyExpr != "method != \"tools/call\"" {
		t.Errorf("expected the prod policy expression, got %q", profile.PolicyExpr)
	}
}

func TestGetProfileConfig_DefaultIsDev(t *testing.T) {
	cfg := &ServerConfig{
		DevPolicyExpr:  "dev-expr",
		ProdPolicyExpr: "prod-expr",
	}

	profile := cfg.GetProfileConfig("")
	if profile.PolicyExpr != "dev-expr" {
		t.Errorf("expected empty profile to default to dev, got %q", profile.PolicyExpr)
	}
}

func TestGetProfileConfig_UnknownProfileFallsBackToDev(t *testing.T) {
	cfg := &ServerConfig{
		DevPolicyExpr:  "dev-expr",
		ProdPolicyExpr: "prod-expr",
	}

	profile := cfg.GetProfileConfig("staging")
	if profile.PolicyExpr != "dev-expr" {
		t.Errorf("expected unknown profile to fall back to dev, got %q", profile.PolicyExpr)
	}
}

func TestValidProfiles(t *testing.T) {
	profiles := ValidProfiles()
	expected := []string{"dev", "prod"}

	if len(profiles) != len(expected) {
		t.Errorf("expected %d profiles, got %d", len(expected), len(profiles))
	}

	for _, p := range expected {
		found := false
		for _, vp := range profiles {
			if vp == p {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected profile %q to be in valid profiles", p)
		}
	}
}

func TestIsValidProfile(t *testing.T) {
	tests := []struct {
		profile string
		valid   bool
	}{
		{"dev", true},
		{"prod", true},
		{"", true},
		{"unknown", false},
		{"DEV", false},
	}

	for _, tt := range tests {
		got := IsValidProfile(tt.profile)
		if got != tt.valid {
			t.Errorf("IsValidProfile(%q) = %v, want %v", tt.profile, got, tt.valid)
		}
	}
}
