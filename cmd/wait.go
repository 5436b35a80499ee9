package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/uia-mcp/internal/output"
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for an element to appear",
	Long: `Poll until an element matching the selector appears or the timeout is
reached. Ctrl-C cancels the wait.

Examples:
  uia-mcp wait --selector Shell_TrayWnd --type className --timeout 2000
  uia-mcp wait --selector "Save As" --timeout 10000
  uia-mcp wait --selector 640,480 --type point`,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	addSelectorFlags(waitCmd)
	waitCmd.Flags().Int("timeout", -1, "Max milliseconds to wait (default from UIA_MCP_DEFAULT_TIMEOUT or 5000)")
	waitCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (default from UIA_MCP_POLL_INTERVAL or 200)")
}

func runWait(cmd *cobra.Command, args []string) error {
	sel, err := selectorFromFlags(cmd)
	if err != nil {
		return err
	}
	timeoutMs, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")
	if intervalMs < 0 {
		return fmt.Errorf("--interval must not be negative")
	}

	timeout := appConfig.DefaultTimeout
	if cmd.Flags().Changed("timeout") {
		timeout = time.Duration(timeoutMs) * time.Millisecond
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	f := newFinder(provider, time.Duration(intervalMs)*time.Millisecond)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res := newFormatter(provider).FromWait(f.WaitFor(ctx, sel, timeout))
	if err := output.Print(res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	return nil
}
