package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mj1618/uia-mcp/internal/output"
	"github.com/mj1618/uia-mcp/internal/platform"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click the centre of a resolved element",
	Long: `Resolve an element by selector and click the centre of its bounding
rectangle.

Examples:
  uia-mcp click --selector SubmitButton --type automationId
  uia-mcp click --selector 640,480 --type point --button right`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	addSelectorFlags(clickCmd)
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")
}

func runClick(cmd *cobra.Command, args []string) error {
	sel, err := selectorFromFlags(cmd)
	if err != nil {
		return err
	}
	buttonStr, _ := cmd.Flags().GetString("button")
	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}
	double, _ := cmd.Flags().GetBool("double")
	count := 1
	if double {
		count = 2
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.Inputter == nil {
		return fmt.Errorf("input simulation not available on this platform")
	}
	format := newFormatter(provider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	el, err := newFinder(provider, 0).Resolve(ctx, sel)
	if err != nil {
		return printElementResult(format.FromFault(output.Describe(sel), err))
	}
	if el == nil {
		return printElementResult(format.FromMatch(sel, nil))
	}

	x, y := el.Center()
	if err := provider.Inputter.Click(x, y, button, count); err != nil {
		return fmt.Errorf("click at {%d,%d}: %w", x, y, err)
	}
	return output.Print(output.ActionResult{
		ElementResult: output.ElementResult{Success: true, Found: true, Element: output.Info(*el)},
		Action:        "click",
		X:             x,
		Y:             y,
	})
}
