package finder

import (
	"fmt"

	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/platform"
)

// Windows returns a snapshot of visible top-level windows in OS enumeration
// order with the desktop shell removed. The slice is materialized once per
// call; call again for fresh state.
func Windows(reader platform.Reader) ([]model.Window, error) {
	windows, err := reader.ListWindows(platform.ListOptions{VisibleOnly: true})
	if err != nil {
		return nil, fmt.Errorf("enumerate windows: %w", err)
	}
	return model.WithoutShell(windows), nil
}
