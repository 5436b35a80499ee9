package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect X Y",
	Short: "Show the UI element at a screen coordinate",
	Long: `Hit-test the UI Automation tree at a screen coordinate and print the
element's properties. Use -- before negative coordinates:

  uia-mcp inspect 100 200
  uia-mcp inspect -- -1500 300`,
	Args: cobra.ExactArgs(2),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func parseCoordinates(args []string) (int, int, error) {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid X coordinate %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid Y coordinate %q", args[1])
	}
	return x, y, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	x, y, err := parseCoordinates(args)
	if err != nil {
		return err
	}
	provider, err := newProvider()
	if err != nil {
		return err
	}
	f := newFinder(provider, 0)
	format := newFormatter(provider)

	el, err := f.At(x, y)
	if err != nil {
		return printElementResult(format.FromFault(fmt.Sprintf("{%d,%d}", x, y), err))
	}
	return printElementResult(format.FromElement(x, y, el))
}
