package platform

import (
	"runtime"
	"testing"
)

func TestNewProvider_ReturnsProvider(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("skipping on non-windows")
	}
	// The windows backend registers itself only when its package is linked
	// in; we just verify the call doesn't panic.
	_, _ = NewProvider()
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestStaticLocale(t *testing.T) {
	var l Locale = StaticLocale("de-DE")
	if got := l.UILanguage(); got != "de-DE" {
		t.Errorf("UILanguage() = %q, want %q", got, "de-DE")
	}
}
