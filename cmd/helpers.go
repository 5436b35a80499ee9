package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/uia-mcp/internal/finder"
	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/output"
	"github.com/mj1618/uia-mcp/internal/platform"
)

// newProvider returns the platform provider, failing if it cannot read.
func newProvider() (*platform.Provider, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	if provider.Reader == nil {
		return nil, fmt.Errorf("reader not available on this platform")
	}
	return provider, nil
}

// newFinder builds a Finder using the loaded config's poll interval unless
// interval is positive.
func newFinder(provider *platform.Provider, interval time.Duration, opts ...finder.Option) *finder.Finder {
	if interval <= 0 && appConfig != nil {
		interval = appConfig.PollInterval
	}
	opts = append([]finder.Option{finder.WithLogger(logger), finder.WithInterval(interval)}, opts...)
	return finder.New(provider.Reader, opts...)
}

func newFormatter(provider *platform.Provider) *output.Formatter {
	if provider.Locale == nil {
		return output.NewFormatter("")
	}
	return output.NewFormatter(provider.Locale.UILanguage())
}

// addSelectorFlags registers --selector and --type.
func addSelectorFlags(cmd *cobra.Command) {
	cmd.Flags().String("selector", "", "Selector value; for point use \"x,y\"")
	cmd.Flags().String("type", "text", "Selector type: text, className, automationId, point")
}

// selectorFromFlags reads the flags added by addSelectorFlags.
func selectorFromFlags(cmd *cobra.Command) (model.Selector, error) {
	value, _ := cmd.Flags().GetString("selector")
	rawKind, _ := cmd.Flags().GetString("type")
	kind, err := model.ParseSelectorKind(rawKind)
	if err != nil {
		return model.Selector{}, err
	}
	if value == "" {
		return model.Selector{}, fmt.Errorf("--selector is required")
	}
	return model.Selector{Kind: kind, Value: value}, nil
}

// printElementResult prints res and turns a fault into a command error.
func printElementResult(res output.ElementResult) error {
	if err := output.Print(res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	return nil
}
