package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mj1618/uia-mcp/internal/config"
	"github.com/mj1618/uia-mcp/internal/logging"
	"github.com/mj1618/uia-mcp/internal/output"
	"github.com/mj1618/uia-mcp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "uia-mcp",
	Short:        "Find and wait for Windows UI elements",
	Long:         "Locate windows and UI Automation elements by title, class name, automation id or screen point, and serve the same lookups as MCP tools.",
	SilenceUsage: true,
}

var (
	appConfig *config.Config
	logger    = zap.NewNop()
)

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from UIA_MCP_LOG_LEVEL or info)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			cfg.LogLevel = level
		}
		l, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		appConfig = cfg
		logger = l
		return nil
	}
}
