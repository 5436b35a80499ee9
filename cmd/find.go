package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mj1618/uia-mcp/internal/finder"
	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/output"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find a window or element by text, class name or automation id",
	Long: `Find the first window or UI element matching one selector. Windows are
searched in enumeration order; for class names and automation ids each
window's element subtree is searched before moving to the next window.

Examples:
  uia-mcp find --text notepad
  uia-mcp find --class-name Shell_TrayWnd
  uia-mcp find --automation-id SubmitButton`,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("text", "", "Window title substring (case-insensitive)")
	findCmd.Flags().String("class-name", "", "Class name (case-insensitive exact match)")
	findCmd.Flags().String("automation-id", "", "Automation id (case-insensitive exact match)")
	findCmd.Flags().Int("depth", 0, "Max element tree depth searched per window (0 = unlimited)")
	findCmd.MarkFlagsOneRequired("text", "class-name", "automation-id")
	findCmd.MarkFlagsMutuallyExclusive("text", "class-name", "automation-id")
}

func findSelector(cmd *cobra.Command) (model.Selector, error) {
	if cmd.Flags().Changed("text") {
		v, _ := cmd.Flags().GetString("text")
		return model.Text(v), nil
	}
	if cmd.Flags().Changed("class-name") {
		v, _ := cmd.Flags().GetString("class-name")
		return model.ClassName(v), nil
	}
	if cmd.Flags().Changed("automation-id") {
		v, _ := cmd.Flags().GetString("automation-id")
		return model.AutomationID(v), nil
	}
	return model.Selector{}, fmt.Errorf("specify one of --text, --class-name or --automation-id")
}

func runFind(cmd *cobra.Command, args []string) error {
	sel, err := findSelector(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider()
	if err != nil {
		return err
	}
	depth, _ := cmd.Flags().GetInt("depth")
	f := newFinder(provider, 0, finder.WithDepth(depth))
	format := newFormatter(provider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m, err := f.Find(ctx, sel)
	if err != nil {
		return printElementResult(format.FromFault(output.Describe(sel), err))
	}
	return printElementResult(format.FromMatch(sel, m))
}
