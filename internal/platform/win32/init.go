//go:build windows

package win32

import "github.com/mj1618/uia-mcp/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Reader:   NewReader(),
			Inputter: NewInputter(),
			Locale:   NewLocale(),
		}, nil
	}
}
