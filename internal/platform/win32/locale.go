//go:build windows

package win32

import "golang.org/x/sys/windows"

// Locale implements platform.Locale from the user's preferred UI languages.
type Locale struct{}

// NewLocale creates a new Windows locale reader.
func NewLocale() *Locale {
	return &Locale{}
}

// UILanguage returns the first preferred UI language, or "en-US".
func (l *Locale) UILanguage() string {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err != nil || len(langs) == 0 {
		return "en-US"
	}
	return langs[0]
}
