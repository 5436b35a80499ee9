package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/uia-mcp/internal/config"
	"github.com/mj1618/uia-mcp/internal/server"
	"github.com/mj1618/uia-mcp/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the element tools",
	Long: `Start a Model Context Protocol (MCP) server exposing find_element_by_text,
find_element_by_class_name, find_element_by_automation_id,
get_element_properties, wait_for_element, list_windows, click_element and
type_into_element.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Flags override UIA_MCP_TRANSPORT and UIA_MCP_PORT.

Examples:
  uia-mcp serve
  uia-mcp serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := *appConfig
	if cmd.Flags().Changed("transport") {
		transport, _ := cmd.Flags().GetString("transport")
		cfg.Transport = config.TransportType(transport)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := newProvider()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return server.New(provider, &cfg, logger, version.Version).Serve()
}
