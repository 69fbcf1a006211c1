// Command mcpkit-server is a reference launcher for an mcpkit-based MCP
// server: it loads configuration, registers the bundled demo tools, wires
// the optional middleware layers (tracing, metrics, policy), and serves
// JSON-RPC requests over stdio until EOF.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samestrin/mcpkit/config"
	"github.com/samestrin/mcpkit/mcp"
	"github.com/samestrin/mcpkit/mcpservice"
	"github.com/samestrin/mcpkit/middleware"
	"github.com/samestrin/mcpkit/pkg/output"
	"github.com/samestrin/mcpkit/statestore"
	"github.com/samestrin/mcpkit/tools"
	"github.com/samestrin/mcpkit/transport"
)

var (
	configPath string
	profile    string
	statePath  string
	listTools  bool
	jsonOut    bool
	version    = "0.1.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "mcpkit-server",
		Short:   "Reference MCP server built on mcpkit",
		Version: version,
		RunE:    runServer,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML server configuration file")
	rootCmd.Flags().StringVar(&profile, "profile", "dev", "deployment profile: dev or prod")
	rootCmd.Flags().StringVar(&statePath, "state-db", ":memory:", "path to the sqlite counter state database")
	rootCmd.Flags().BoolVar(&listTools, "list-tools", false, "print the registered tools and exit instead of serving")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "with --list-tools, print as JSON instead of text")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	if !config.IsValidProfile(profile) {
		return fmt.Errorf("invalid profile %q, want one of %v", profile, config.ValidProfiles())
	}

	cfg := &config.ServerConfig{Name: "mcpkit-server", Version: version}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := statestore.Open(statePath)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer store.Close()

	builder := mcpservice.NewBuilder(cfg.Name, cfg.Version).
		WithInstructions(cfg.Instructions).
		WithTool(tools.Calculator()).
		WithTool(tools.HumanSize()).
		WithTool(tools.JSONQuery()).
		WithTool(tools.ListFiles()).
		WithTool(tools.StateCounter())
	mcpservice.WithState(builder, store)

	if cfg.AuditLogPath != "" {
		builder = builder.WithNotificationSink(transport.NewFileAuditSink(cfg.AuditLogPath))
	}

	svc := builder.Build()

	if listTools {
		return printToolList(svc.ListTools())
	}

	msgSvc := mcpservice.NewMessageService(svc)

	var layers []middleware.MessageLayer
	if cfg.MiddlewareTracing {
		layers = append(layers, middleware.NewTracing(logger))
	}
	if cfg.MiddlewareMetrics {
		layers = append(layers, middleware.NewMetrics(prometheus.DefaultRegisterer))
	}
	if policyExpr := cfg.GetProfileConfig(profile).PolicyExpr; policyExpr != "" {
		policy, err := middleware.NewPolicy(policyExpr)
		if err != nil {
			return fmt.Errorf("failed to compile policy expression: %w", err)
		}
		layers = append(layers, policy)
	}

	chained := middleware.ChainMessage(msgSvc.Handle, layers...)
	reqSvc := mcpservice.NewRequestService(middleware.AsHandler(chained))

	opts := []transport.Option{transport.WithLogger(logger)}
	if cfg.MaxLineBytes > 0 {
		opts = append(opts, transport.WithMaxLineBytes(cfg.MaxLineBytes))
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "mcpkit-server v%s (%s profile) — %d tools registered\n", cfg.Version, profile, len(svc.ListTools()))
	}
	logger.Info("mcpkit-server starting", "name", cfg.Name, "version", cfg.Version, "profile", profile)
	return transport.RunStdio(context.Background(), reqSvc, opts...)
}

// printToolList renders the registered tools to stdout, for operators
// inspecting a deployment's configuration without speaking JSON-RPC.
func printToolList(tools []mcp.ToolMeta) error {
	f := output.New(jsonOut, false, os.Stdout)
	return f.Print(tools, func(w io.Writer, data interface{}) {
		for _, t := range tools {
			fmt.Fprintf(w, "%s: %s\n", t.Name, t.Description)
		}
	})
}
