package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/uia-mcp/internal/finder"
	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/output"
	"github.com/mj1618/uia-mcp/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows",
	Long:  "List top-level windows in enumeration order with title, class, owning app, PID and bounds. The desktop shell is omitted.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("filter", "", "Only windows whose title, class or app contains this text")
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().Bool("all", false, "Include hidden and cloaked windows")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}

	filter, _ := cmd.Flags().GetString("filter")
	pid, _ := cmd.Flags().GetInt("pid")
	all, _ := cmd.Flags().GetBool("all")

	var windows []model.Window
	if all || pid != 0 {
		windows, err = provider.Reader.ListWindows(platform.ListOptions{VisibleOnly: !all, PID: pid})
		if err == nil {
			windows = model.WithoutShell(windows)
		}
	} else {
		windows, err = finder.Windows(provider.Reader)
	}
	if err != nil {
		return err
	}

	return output.Print(output.FromWindows(model.FilterWindows(windows, filter)))
}
