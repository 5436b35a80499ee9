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

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Click an element to focus it, then type text",
	Long:  "Resolve an element by selector, click its centre to focus it and type text. Text can be passed as a positional argument or via --text.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	addSelectorFlags(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type (alternative to positional arg)")
	typeCmd.Flags().Int("delay", 0, "Delay between keystrokes in ms")
}

func runType(cmd *cobra.Command, args []string) error {
	sel, err := selectorFromFlags(cmd)
	if err != nil {
		return err
	}
	text, _ := cmd.Flags().GetString("text")
	delayMs, _ := cmd.Flags().GetInt("delay")

	// Positional arg overrides --text flag
	if len(args) > 0 {
		text = args[0]
	}
	if text == "" {
		return fmt.Errorf("specify text to type")
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
	if err := provider.Inputter.Click(x, y, platform.MouseLeft, 1); err != nil {
		return fmt.Errorf("focus target: %w", err)
	}
	if err := provider.Inputter.TypeText(text, delayMs); err != nil {
		return err
	}
	return output.Print(output.ActionResult{
		ElementResult: output.ElementResult{Success: true, Found: true, Element: output.Info(*el)},
		Action:        "type",
		X:             x,
		Y:             y,
	})
}
